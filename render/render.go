package render

import (
	"errors"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bt4R9/TD/bfs"
	"github.com/bt4R9/TD/grid"
)

// ErrGridNil is returned if a nil grid is passed.
var ErrGridNil = errors.New("render: grid is nil")

// Glyphs are the characters drawn for each layer.
type Glyphs struct {
	Open    rune
	Blocked rune
	Path    rune
	Failure rune
}

// DefaultGlyphs matches the grid package's ASCII form, with '*' for the path
// and 'X' for failed endpoints.
var DefaultGlyphs = Glyphs{
	Open:    grid.OpenGlyph,
	Blocked: grid.BlockedGlyph,
	Path:    '*',
	Failure: 'X',
}

// layer of a painted cell, in drawing order.
type layer int

const (
	terrainOpen layer = iota
	terrainBlocked
	pathCell
	failureCell
)

var palette = map[layer]text.Colors{
	terrainOpen:    {text.BgHiWhite, text.FgBlack},
	terrainBlocked: {text.BgBlack, text.FgHiBlack},
	pathCell:       {text.BgGreen, text.FgBlack},
	failureCell:    {text.BgRed, text.FgHiWhite},
}

// Option configures Text via functional arguments.
type Option func(*Options)

// Options holds the overlays and style of one drawing.
type Options struct {
	Path    bfs.Path
	Failure []grid.Coord
	Color   bool
	Glyphs  Glyphs
}

// DefaultOptions returns plain terrain with DefaultGlyphs and no color.
func DefaultOptions() Options {
	return Options{Glyphs: DefaultGlyphs}
}

// WithPath overlays p. Cells outside the grid are ignored.
func WithPath(p bfs.Path) Option {
	return func(o *Options) { o.Path = p }
}

// WithFailure marks start and end as failed endpoints. Cells outside the
// grid are ignored.
func WithFailure(start, end grid.Coord) Option {
	return func(o *Options) { o.Failure = []grid.Coord{start, end} }
}

// WithColor toggles ANSI colors.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithGlyphs replaces the glyph set.
func WithGlyphs(g Glyphs) Option {
	return func(o *Options) { o.Glyphs = g }
}

// Text writes g to w, one line per row, each terminated by '\n'.
func Text(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	layers := make([]layer, g.Len())
	for i := range layers {
		if g.CellAt(i) == grid.Blocked {
			layers[i] = terrainBlocked
		}
	}
	if len(o.Failure) > 0 {
		paint(g, layers, o.Failure, failureCell)
	} else {
		paint(g, layers, o.Path, pathCell)
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for x := 0; x < g.Width(); x++ {
			l := layers[g.Index(grid.Pos(y, x))]
			glyph := string(o.Glyphs.pick(l))
			if o.Color {
				glyph = palette[l].Sprint(glyph)
			}
			sb.WriteString(glyph)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String is Text into a string.
func String(g *grid.Grid, opts ...Option) string {
	var sb strings.Builder
	_ = Text(&sb, g, opts...)
	return sb.String()
}

func paint(g *grid.Grid, layers []layer, cells []grid.Coord, l layer) {
	for _, c := range cells {
		if g.InBounds(c) {
			layers[g.Index(c)] = l
		}
	}
}

func (gl Glyphs) pick(l layer) rune {
	switch l {
	case terrainBlocked:
		return gl.Blocked
	case pathCell:
		return gl.Path
	case failureCell:
		return gl.Failure
	default:
		return gl.Open
	}
}
