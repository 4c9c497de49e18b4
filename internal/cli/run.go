package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridcourier/internal/adapter/mapgen"
	textrender "gridcourier/internal/adapter/render/text"
	"gridcourier/internal/adapter/repo/memory"
	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/run"
	"gridcourier/internal/domain/world"
)

// dynamicObstacles is how many random moving obstacles --dynamic adds.
const dynamicObstacles = 2

const logTail = 5

type runFlags struct {
	mapFile    string
	size       []int
	algorithm  string
	dynamic    bool
	seed       int64
	maxReplans int
	maxSteps   int
}

func (f *runFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mapFile, "map", "", "map file to load (e.g. maps/small.map)")
	cmd.Flags().IntSliceVar(&f.size, "size", nil, "random map size as WIDTH,HEIGHT")
	cmd.Flags().BoolVar(&f.dynamic, "dynamic", false, "add random moving obstacles")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for random maps and obstacles (default from config)")
	cmd.Flags().IntVar(&f.maxReplans, "max-replans", 0, "replanning budget (default from config)")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", 0, "step budget (default from config)")
}

// resolve fills every flag the user left unset from configuration.
func (f *runFlags) resolve(cmd *cobra.Command, a *app) {
	d := a.cfg.Delivery
	if !cmd.Flags().Changed("seed") {
		f.seed = d.Seed
	}
	if !cmd.Flags().Changed("max-replans") {
		f.maxReplans = d.MaxReplans
	}
	if !cmd.Flags().Changed("max-steps") {
		f.maxSteps = d.MaxSteps
	}
	if f.algorithm == "" {
		f.algorithm = d.Algorithm
	}
}

func newRunCommand(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm, or all of them, on a map.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.resolve(cmd, a)
			return a.runDeliveries(cmd.Context(), cmd.OutOrStdout(), f, false)
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "", "bfs, ucs, astar, hillclimb or all (default from config)")
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same scenario and print a comparison table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.resolve(cmd, a)
			f.algorithm = run.AlgorithmAll
			return a.runDeliveries(cmd.Context(), cmd.OutOrStdout(), f, true)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) loadWorld(f *runFlags) (*world.World, string, error) {
	switch {
	case f.mapFile != "":
		raw, err := os.ReadFile(f.mapFile)
		if err != nil {
			return nil, "", fmt.Errorf("read map: %w", err)
		}
		w, err := world.LoadOrDefault(string(raw))
		if err != nil {
			a.logger.Warn("map rejected, using default world", zap.String("file", f.mapFile), zap.Error(err))
			return w, "default", nil
		}
		return w, f.mapFile, nil
	case len(f.size) > 0:
		if len(f.size) != 2 || f.size[0] < 1 || f.size[1] < 1 {
			return nil, "", fmt.Errorf("--size expects WIDTH,HEIGHT, got %v", f.size)
		}
		w := mapgen.Random(f.size[0], f.size[1], rand.New(rand.NewSource(f.seed)))
		return w, fmt.Sprintf("random %dx%d", f.size[0], f.size[1]), nil
	default:
		w, err := mapgen.Sample(mapgen.Small)
		return w, mapgen.Small, err
	}
}

func (a *app) runDeliveries(ctx context.Context, out io.Writer, f *runFlags, table bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	w, name, err := a.loadWorld(f)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, textrender.Grid(textrender.Frame{Title: "Initial grid: " + name, Snapshot: w.Snapshot(0)}))

	req := run.Request{
		Encoding:    w.Encode(),
		Algorithm:   f.algorithm,
		MaxReplans:  f.maxReplans,
		MaxSteps:    f.maxSteps,
		Seed:        f.seed,
		MaxRestarts: a.cfg.Delivery.MaxRestarts,
	}
	if f.dynamic {
		req.RandomObstacles = dynamicObstacles
	}
	resp, err := a.runUseCase().Execute(ctx, req)
	if err != nil {
		return err
	}

	failed := 0
	rows := make([]textrender.Row, 0, len(resp.Runs))
	for _, o := range resp.Runs {
		pos := o.Metrics.FinalPosition
		fmt.Fprintln(out, textrender.Grid(textrender.Frame{
			Title:    "Results: " + strings.ToUpper(o.Algorithm),
			Snapshot: w.Snapshot(0),
			Path:     o.Metrics.FinalPath,
			Agent:    &pos,
		}))
		if err := textrender.Summary(out, o.Algorithm, o.Metrics, logTail); err != nil {
			return err
		}
		fmt.Fprintln(out)
		rows = append(rows, textrender.Row{Algorithm: o.Algorithm, Metrics: o.Metrics})
		if !o.Metrics.Success {
			failed++
		}
	}
	if table || len(rows) > 1 {
		if err := textrender.Comparison(out, rows); err != nil {
			return err
		}
	}
	if failed > 0 && !table {
		return fmt.Errorf("%w: %d of %d runs", ErrDeliveryFailed, failed, len(rows))
	}
	return nil
}

// runUseCase keeps CLI runs in memory so they share the server's scenario
// and persistence path without a database.
func (a *app) runUseCase() run.UseCase {
	store := memory.NewStore()
	return run.UseCase{
		TxManager: memory.NewTxManager(store),
		Maps:      maps.UseCase{Maps: memory.NewMapRepo(store)},
		Runs:      memory.NewRunRepo(store),
		Events:    memory.NewEventRepo(store),
		Logger:    a.logger,
	}
}
