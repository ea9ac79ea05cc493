package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/bt4R9/TD/bfs"
	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
	"github.com/bt4R9/TD/internal/format"
	"github.com/bt4R9/TD/internal/mazefile"
	"github.com/bt4R9/TD/maze"
	"github.com/bt4R9/TD/render"
)

type solveFlags struct {
	mazeFlags
	gridFile string
	from     string
	to       string
	table    string
}

func newSolveCmd(a *app) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the fewest-move path through a maze",
		Long: "Solve loads a maze file (--grid) or generates one from --size/--seed,\n" +
			"then searches from --from (default: the first entrance) to --to\n" +
			"(default: the top-left interior cell).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, sf)
		},
	}
	addMazeFlags(cmd, &sf.mazeFlags)
	f := cmd.Flags()
	f.StringVarP(&sf.gridFile, "grid", "g", "", "maze file written by 'mazectl generate --format yaml'")
	f.StringVar(&sf.from, "from", "", "start cell as row,col")
	f.StringVar(&sf.to, "to", "1,1", "end cell as row,col")
	f.StringVar(&sf.table, "table", "ascii", "summary table: ascii or markdown")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, sf *solveFlags) error {
	cfg, err := a.resolve(cmd, &sf.mazeFlags)
	if err != nil {
		return err
	}

	var m *maze.Maze
	if sf.gridFile != "" {
		m, err = mazefile.Load(sf.gridFile)
	} else {
		m, err = maze.Generate(cfg.Size, maze.WithSeed(cfg.Seed), maze.WithEntrances(cfg.Entrances), maze.WithLogger(a.log))
	}
	if err != nil {
		return err
	}

	start := m.Entrance
	if sf.from != "" {
		if start, err = parseCoord(sf.from); err != nil {
			return err
		}
	}
	end, err := parseCoord(sf.to)
	if err != nil {
		return err
	}

	gr, err := gridgraph.Build(m.Grid)
	if err != nil {
		return err
	}
	visited := 0
	began := time.Now()
	path, err := bfs.FindPath(gr, start, end,
		bfs.WithContext(cmd.Context()),
		bfs.WithOnVisit(func(grid.Coord, int) error { visited++; return nil }),
	)
	elapsed := time.Since(began)
	found := err == nil
	if err != nil && !errors.Is(err, bfs.ErrNoPath) {
		return err
	}

	out := cmd.OutOrStdout()
	drawing := render.WithPath(path)
	if !found {
		drawing = render.WithFailure(start, end)
	}
	if err := render.Text(out, m.Grid, drawing, render.WithColor(cfg.Color)); err != nil {
		return err
	}

	tb := format.NewTable(format.ParseMode(sf.table))
	tb.Header("From", "To", "Found", "Hops", "Visited", "Elapsed")
	hops := "-"
	if found {
		hops = fmt.Sprint(path.Hops())
	}
	tb.Row(start, end, format.BoolMark(found), hops, visited, format.FmtDuration(elapsed))
	fmt.Fprintln(out, tb.String())

	if found {
		a.log.Info("path found", slog.String("from", start.String()), slog.String("to", end.String()), slog.Int("hops", path.Hops()))
	} else {
		fmt.Fprintf(out, "no path: %v\n", err)
		a.log.Info("no path", slog.String("from", start.String()), slog.String("to", end.String()), slog.String("reason", err.Error()))
	}
	return nil
}
