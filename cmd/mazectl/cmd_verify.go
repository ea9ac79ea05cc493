package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bt4R9/TD/bfs"
	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
	"github.com/bt4R9/TD/internal/format"
	"github.com/bt4R9/TD/maze"
)

type verifyFlags struct {
	mazeFlags
	count    int
	parallel int
	table    string
}

// verifyResult is the outcome of checking one generated maze.
type verifyResult struct {
	Seed       int64
	Open       int
	Walls      int
	Components int
	Reachable  int
	BorderOK   bool
	Err        error
}

// ok reports whether every check passed.
func (r verifyResult) ok() bool {
	return r.Err == nil && r.BorderOK && r.Components == 1 && r.Reachable == r.Open
}

func newVerifyCmd(a *app) *cobra.Command {
	vf := &verifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Generate many mazes and check they are closed and fully connected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runVerify(cmd, vf)
		},
	}
	addMazeFlags(cmd, &vf.mazeFlags)
	f := cmd.Flags()
	f.IntVar(&vf.count, "count", 100, "number of mazes; seeds are seed, seed+1, ...")
	f.IntVar(&vf.parallel, "parallel", 0, "concurrent workers (default from config)")
	f.StringVar(&vf.table, "table", "ascii", "result table: ascii or markdown")
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, vf *verifyFlags) error {
	cfg, err := a.resolve(cmd, &vf.mazeFlags)
	if err != nil {
		return err
	}
	if vf.count < 1 {
		return fmt.Errorf("count must be at least 1 (%d)", vf.count)
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = vf.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	began := time.Now()
	results := make([]verifyResult, vf.count)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Parallel)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = verifyMaze(ctx, cfg.Size, cfg.Seed+int64(i), cfg.Entrances)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	tb := format.NewTable(format.ParseMode(vf.table))
	tb.Header("Seed", "Open", "Walls", "Components", "Reachable", "Border", "OK")
	for _, r := range results {
		if !r.ok() {
			failed++
		}
		tb.Row(r.Seed, r.Open, r.Walls, r.Components, format.FmtPercent(r.Reachable, r.Open), format.BoolMark(r.BorderOK), format.BoolMark(r.ok()))
	}
	tb.Footer("TOTAL", vf.count, "", "", "", "failed", failed)
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())

	a.log.Info("verify finished",
		slog.Int("size", cfg.Size),
		slog.Int("count", vf.count),
		slog.Int("failed", failed),
		slog.Int("parallel", cfg.Parallel),
		slog.Duration("elapsed", time.Since(began)),
	)
	if failed > 0 {
		for _, r := range results {
			if r.Err != nil {
				a.log.Error("maze check failed", slog.Int64("seed", r.Seed), slog.String("error", r.Err.Error()))
			}
		}
		return fmt.Errorf("verify: %d of %d mazes failed", failed, vf.count)
	}
	return nil
}

// verifyMaze runs one generate, build and search pipeline. The pipeline owns
// its grid and graph.
func verifyMaze(ctx context.Context, size int, seed int64, entrances int) verifyResult {
	r := verifyResult{Seed: seed}
	m, err := maze.Generate(size,
		maze.WithSeed(seed),
		maze.WithEntrances(entrances),
		maze.WithOnWall(func(maze.Wall) { r.Walls++ }),
	)
	if err != nil {
		r.Err = err
		return r
	}
	r.Open = m.Grid.OpenCount()
	r.BorderOK = borderClosed(m)

	gr, err := gridgraph.Build(m.Grid)
	if err != nil {
		r.Err = err
		return r
	}
	r.Components = len(gr.ConnectedComponents())

	res, err := bfs.Search(gr, m.Entrance, bfs.WithContext(ctx))
	if err != nil {
		r.Err = err
		return r
	}
	r.Reachable = len(res.Order)
	return r
}

// borderClosed reports whether the outer ring is blocked everywhere except
// at the maze's entrances.
func borderClosed(m *maze.Maze) bool {
	n := m.Size()
	doors := make(map[grid.Coord]bool, len(m.Entrances))
	for _, e := range m.Entrances {
		doors[e] = true
	}
	for i := 0; i < n; i++ {
		for _, c := range [...]grid.Coord{grid.Pos(0, i), grid.Pos(i, 0), grid.Pos(i, n-1), grid.Pos(n-1, i)} {
			if m.Grid.IsOpen(c) != doors[c] {
				return false
			}
		}
	}
	return true
}
