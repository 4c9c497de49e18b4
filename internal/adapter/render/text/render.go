// Package textrender draws worlds, paths and run metrics as plain text.
package textrender

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

const (
	MarkStart    = "S"
	MarkGoal     = "G"
	MarkObstacle = "X"
	MarkAgent    = "A"
	MarkPath     = "*"
)

// Frame is one picture of the world: a snapshot plus what to overlay on it.
type Frame struct {
	Title    string
	Snapshot world.Snapshot
	Path     []world.Cell
	Agent    *world.Cell
}

// Grid renders row y=0 first. Start and goal win over every overlay, then
// obstacles, the agent, and path cells; anything else shows its cost.
func Grid(f Frame) string {
	onPath := make(map[world.Cell]bool, len(f.Path))
	for _, c := range f.Path {
		onPath[c] = true
	}

	marks := make([]string, len(f.Snapshot.Tiles))
	width := 1
	for i, tile := range f.Snapshot.Tiles {
		marks[i] = mark(tile, f.Agent, onPath)
		if len(marks[i]) > width {
			width = len(marks[i])
		}
	}

	var b strings.Builder
	if f.Title != "" {
		fmt.Fprintf(&b, "%s (t=%d)\n", f.Title, f.Snapshot.Tick)
	}
	for y := 0; y < f.Snapshot.Height; y++ {
		for x := 0; x < f.Snapshot.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			m := marks[y*f.Snapshot.Width+x]
			b.WriteString(strings.Repeat(" ", width-len(m)))
			b.WriteString(m)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func mark(tile world.Tile, agent *world.Cell, onPath map[world.Cell]bool) string {
	switch {
	case tile.Kind == world.TileStart:
		return MarkStart
	case tile.Kind == world.TileGoal:
		return MarkGoal
	case tile.Kind == world.TileStatic || tile.Kind == world.TileDynamic:
		return MarkObstacle
	case agent != nil && *agent == tile.Cell:
		return MarkAgent
	case onPath[tile.Cell]:
		return MarkPath
	default:
		return strconv.Itoa(tile.Cost)
	}
}

// Summary prints one run's metrics and, when replanning happened, the tail of
// its execution log.
func Summary(out io.Writer, algorithm string, m delivery.Metrics, logTail int) error {
	status := "ok"
	if !m.Success {
		status = "failed (" + string(m.Reason) + ")"
	}
	lines := []string{
		fmt.Sprintf("%s results", strings.ToUpper(algorithm)),
		fmt.Sprintf("  success:        %s", status),
		fmt.Sprintf("  total cost:     %d", m.TotalCost),
		fmt.Sprintf("  time steps:     %d", m.TotalTimeSteps),
		fmt.Sprintf("  nodes expanded: %d", m.NodesExpanded),
		fmt.Sprintf("  replans:        %d", m.Replans),
		fmt.Sprintf("  planning time:  %.4fs", m.PlanningTimeSeconds()),
	}
	if m.Success {
		lines = append(lines, fmt.Sprintf("  path length:    %d cells", len(m.FinalPath)))
	}
	if m.Replans > 0 && logTail > 0 && len(m.ExecutionLog) > 0 {
		lines = append(lines, "  execution log:")
		from := len(m.ExecutionLog) - logTail
		if from < 0 {
			from = 0
		}
		for _, entry := range m.ExecutionLog[from:] {
			lines = append(lines, "    "+entry)
		}
	}
	_, err := io.WriteString(out, strings.Join(lines, "\n")+"\n")
	return err
}

type Row struct {
	Algorithm string
	Metrics   delivery.Metrics
}

// Comparison writes an aligned table with one row per algorithm, in the
// order given.
func Comparison(out io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSUCCESS\tCOST\tSTEPS\tEXPANDED\tREPLANS\tPLANNING(s)")
	for _, r := range rows {
		success := "yes"
		if !r.Metrics.Success {
			success = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%.4f\n",
			r.Algorithm,
			success,
			r.Metrics.TotalCost,
			r.Metrics.TotalTimeSteps,
			r.Metrics.NodesExpanded,
			r.Metrics.Replans,
			r.Metrics.PlanningTimeSeconds(),
		)
	}
	return tw.Flush()
}
