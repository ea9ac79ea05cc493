// Package bfs provides tunable options, result types and error definitions
// for breadth-first path search over a grid or a gridgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bt4R9/TD/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph or grid pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is the not-found outcome: the end is unreachable from the
	// start. Out-of-bounds and blocked endpoints wrap it as well, so
	// errors.Is(err, ErrNoPath) covers every not-found case.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOutOfBounds is returned when an endpoint has no cell.
	ErrOutOfBounds = errors.New("bfs: coordinate out of bounds")

	// ErrBlocked is returned when an endpoint is a Blocked cell.
	ErrBlocked = errors.New("bfs: endpoint is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is added to the frontier.
	// Receives the cell and its hop distance from the start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c grid.Coord, depth int)

	// OnVisit is called when a cell is closed. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c grid.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnDequeue: func(grid.Coord, int) {},
		OnVisit:   func(grid.Coord, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given hop count.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Path is an ordered, non-empty sequence of cells from a start to an end.
// Consecutive cells are 4-neighbors and no cell repeats.
type Path []grid.Coord

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Hops returns the number of moves, Len()-1.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first cell. p must be non-empty.
func (p Path) Start() grid.Coord { return p[0] }

// End returns the last cell. p must be non-empty.
func (p Path) End() grid.Coord { return p[len(p)-1] }

// Contains reports whether c lies on the path.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// String formats the path as "(r,c) (r,c) ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Validate checks p against g: non-empty, every cell Open, consecutive
// cells one axis-aligned step apart and no cell repeated.
func (p Path) Validate(g *grid.Grid) error {
	if len(p) == 0 {
		return errors.New("bfs: empty path")
	}
	seen := make(map[grid.Coord]struct{}, len(p))
	for i, c := range p {
		if !g.IsOpen(c) {
			return fmt.Errorf("bfs: path cell %d %v is not open", i, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("bfs: path cell %d %v repeats", i, c)
		}
		seen[c] = struct{}{}
		if i == 0 {
			continue
		}
		dr, dc := c.Row-p[i-1].Row, c.Col-p[i-1].Col
		if dr*dr+dc*dc != 1 {
			return fmt.Errorf("bfs: path cells %v and %v are not neighbors", p[i-1], c)
		}
	}
	return nil
}

// Result holds the outcome of a full traversal from one start cell:
//   - Order: cells in visit sequence.
//   - Depth / PathTo: hop distance and shortest path to any reached cell.
type Result struct {
	Start grid.Coord
	Order []grid.Coord

	sp     space
	depth  []int
	parent []int
}

// Reached reports whether c was visited.
func (r *Result) Reached(c grid.Coord) bool {
	_, ok := r.Depth(c)
	return ok
}

// Depth returns the hop distance of c from Start, or false if c was not
// reached.
func (r *Result) Depth(c grid.Coord) (int, bool) {
	id, ok := r.sp.lookup(c)
	if !ok || r.depth[id] < 0 {
		return 0, false
	}
	return r.depth[id], true
}

// PathTo reconstructs the shortest path from Start to dest.
// Returns an error wrapping ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Coord) (Path, error) {
	id, ok := r.sp.lookup(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %v", ErrNoPath, ErrOutOfBounds, dest)
	}
	if r.depth[id] < 0 {
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, dest, r.Start)
	}
	return reconstruct(r.sp, r.parent, id), nil
}
