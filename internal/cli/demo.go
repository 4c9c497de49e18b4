package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gridcourier/internal/adapter/mapgen"
	textrender "gridcourier/internal/adapter/render/text"
	"gridcourier/internal/app/run"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/obstacle"
	"gridcourier/internal/domain/search"
	"gridcourier/internal/domain/world"
)

// demoObstacles sweep the two open rows of the dynamic sample map.
func demoObstacles() []run.MovingObstacle {
	return []run.MovingObstacle{
		{
			Start:     world.Cell{X: 1, Y: 1},
			Path:      []world.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}},
			Speed:     2,
			StartTime: 2,
		},
		{
			Start:     world.Cell{X: 5, Y: 5},
			Path:      []world.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}},
			Speed:     3,
			StartTime: 1,
		},
	}
}

func newDemoCommand(a *app) *cobra.Command {
	algorithm := search.AStar.String()
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show replanning on the dynamic sample map with two moving obstacles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo(cmd, algorithm)
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", algorithm, "bfs, ucs, astar or hillclimb")
	return cmd
}

func (a *app) demo(cmd *cobra.Command, algorithm string) error {
	out := cmd.OutOrStdout()
	w, err := mapgen.Sample(mapgen.Dynamic)
	if err != nil {
		return err
	}
	moving := demoObstacles()
	fmt.Fprintln(out, textrender.Grid(textrender.Frame{Title: "Dynamic replanning demo", Snapshot: w.Snapshot(0)}))

	resp, err := a.runUseCase().Execute(cmd.Context(), run.Request{
		Encoding:    w.Encode(),
		Algorithm:   algorithm,
		MaxReplans:  a.cfg.Delivery.MaxReplans,
		MaxSteps:    a.cfg.Delivery.MaxSteps,
		Seed:        a.cfg.Delivery.Seed,
		MaxRestarts: a.cfg.Delivery.MaxRestarts,
		Moving:      moving,
	})
	if err != nil {
		return err
	}
	outcome := resp.Runs[0]
	if err := renderBlockedFrames(out, w, moving, outcome.Metrics.Events); err != nil {
		return err
	}

	pos := outcome.Metrics.FinalPosition
	fmt.Fprintln(out, textrender.Grid(textrender.Frame{
		Title:    "Final path",
		Snapshot: w.Snapshot(0),
		Path:     outcome.Metrics.FinalPath,
		Agent:    &pos,
	}))
	return textrender.Summary(out, outcome.Algorithm, outcome.Metrics, len(outcome.Metrics.ExecutionLog))
}

// renderBlockedFrames replays the obstacle schedule on a copy of the map and
// draws the world at every tick where the agent found its way blocked.
func renderBlockedFrames(out io.Writer, base *world.World, moving []run.MovingObstacle, events []delivery.Event) error {
	replica := base.Clone()
	sched := obstacle.NewScheduler(replica)
	for _, m := range moving {
		if _, err := sched.AddMovingObstacle(m.Start, m.Path, m.Speed, m.StartTime); err != nil {
			return err
		}
	}
	for _, evt := range events {
		if evt.Type != delivery.EventBlocked {
			continue
		}
		sched.Materialize(evt.Tick)
		pos := evt.Position
		fmt.Fprintln(out, textrender.Grid(textrender.Frame{
			Title:    "Blocked: " + evt.Detail,
			Snapshot: replica.Snapshot(evt.Tick),
			Agent:    &pos,
		}))
	}
	return nil
}
