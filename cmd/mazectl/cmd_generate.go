package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bt4R9/TD/internal/format"
	"github.com/bt4R9/TD/internal/mazefile"
	"github.com/bt4R9/TD/maze"
	"github.com/bt4R9/TD/render"
)

type generateFlags struct {
	mazeFlags
	format string
	out    string
	trace  bool
}

func newGenerateCmd(a *app) *cobra.Command {
	gf := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print or save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, gf)
		},
	}
	addMazeFlags(cmd, &gf.mazeFlags)
	f := cmd.Flags()
	f.StringVar(&gf.format, "format", "text", "output format: text or yaml")
	f.StringVarP(&gf.out, "out", "o", "", "write to this file instead of stdout")
	f.BoolVar(&gf.trace, "trace", false, "list every carved wall")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, gf *generateFlags) error {
	if gf.format != "text" && gf.format != "yaml" {
		return fmt.Errorf("unknown format %q: want text or yaml", gf.format)
	}
	cfg, err := a.resolve(cmd, &gf.mazeFlags)
	if err != nil {
		return err
	}

	var walls []maze.Wall
	opts := []maze.Option{
		maze.WithSeed(cfg.Seed),
		maze.WithEntrances(cfg.Entrances),
		maze.WithLogger(a.log),
	}
	if gf.trace {
		opts = append(opts, maze.WithOnWall(func(w maze.Wall) { walls = append(walls, w) }))
	}
	m, err := maze.Generate(cfg.Size, opts...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	var buf bytes.Buffer
	switch gf.format {
	case "yaml":
		err = mazefile.Encode(&buf, m)
	default:
		err = render.Text(&buf, m.Grid, render.WithColor(cfg.Color && gf.out == ""))
		if err == nil {
			fmt.Fprintf(&buf, "size=%d seed=%d entrances=%v\n", m.Size(), m.Seed, m.Entrances)
		}
	}
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), gf.out, buf.Bytes()); err != nil {
		return err
	}
	a.log.Info("maze generated",
		slog.Int("size", m.Size()),
		slog.Int64("seed", m.Seed),
		slog.String("format", gf.format),
		slog.String("out", gf.out),
	)

	if gf.trace {
		fmt.Fprint(cmd.OutOrStdout(), wallTable(walls))
	}
	return nil
}

// wallTable lists walls in carving order.
func wallTable(walls []maze.Wall) string {
	tb := format.NewTable(format.ASCII)
	tb.Header("#", "Depth", "Orientation", "At", "Span", "Hole")
	for i, w := range walls {
		tb.Row(i+1, w.Depth, w.Orientation, w.At, fmt.Sprintf("%d..%d", w.From, w.To), w.Hole)
	}
	tb.Footer("", "", "", "", "walls", len(walls))
	tb.Columns(
		format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
	)
	return tb.String() + "\n"
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
