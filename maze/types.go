package maze

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bt4R9/TD/grid"
)

// Dimension limits accepted by Generate.
const (
	// MinSize is the smallest maze with an interior cell and a non-corner
	// bottom-row cell to open.
	MinSize = 3
	// MaxSize caps the allocation at MaxSize² cells.
	MaxSize = 4096
)

// Sentinel errors for maze generation.
var (
	// ErrInvalidDimension is returned for sizes outside [MinSize, MaxSize].
	ErrInvalidDimension = errors.New("maze: invalid dimension")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrTooManyEntrances is returned when the bottom row cannot hold the
	// requested number of entrances.
	ErrTooManyEntrances = errors.New("maze: too many entrances for size")
)

// Maze is a generated grid plus the bottom-row openings carved into it.
type Maze struct {
	Grid      *grid.Grid   // size×size cells
	Entrance  grid.Coord   // first (or only) entrance, Entrances[0]
	Entrances []grid.Coord // all entrances, left to right
	Seed      int64        // seed of the random source, 0 when WithRand was used
}

// Size returns the side length of the maze.
func (m *Maze) Size() int {
	return m.Grid.Height()
}

// Orientation of a dividing wall.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Wall describes one carved dividing wall. For a Horizontal wall At is the
// row and From..To the column span; for a Vertical wall At is the column and
// From..To the row span. Hole is the open cell left in the wall.
type Wall struct {
	Orientation Orientation
	At          int
	From, To    int
	Hole        grid.Coord
	Depth       int // recursion depth, 0 for the first wall
}

// Option configures Generate via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a Generate call.
type Options struct {
	// Rand is the random source. Nil means one seeded from Seed.
	Rand *rand.Rand

	// Seed seeds Rand when Rand is nil.
	Seed int64

	// Entrances is the number of bottom-row openings.
	Entrances int

	// Logger receives a debug summary per maze.
	Logger *slog.Logger

	// OnWall is called after each wall is carved.
	OnWall func(Wall)

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - a time-based seed
//   - one entrance
//   - slog.Default() logger
//   - no-op OnWall hook.
func DefaultOptions() Options {
	return Options{
		Seed:      time.Now().UnixNano(),
		Entrances: 1,
		Logger:    slog.Default(),
		OnWall:    func(Wall) {},
	}
}

// WithSeed makes generation deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand supplies the random source directly. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
			o.Seed = 0
		}
	}
}

// WithEntrances sets the number of bottom-row entrances.
//
//	n >= 1: open n distinct entrances
//	n < 1:  invalid option → ErrOptionViolation
func WithEntrances(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: entrances must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Entrances = n
	}
}

// WithLogger sets the logger for the generation summary.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnWall registers a callback invoked for every carved wall.
func WithOnWall(fn func(Wall)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWall = fn
		}
	}
}
