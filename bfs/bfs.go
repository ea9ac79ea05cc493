// Package bfs provides breadth-first shortest-path search over a
// gridgraph.Graph or directly over a *grid.Grid.
//
// BFS explores cells in increasing hop distance from the start, closing each
// cell the first time it is dequeued, with optional hooks and depth limiting.
package bfs

import (
	"fmt"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
)

// undiscovered marks a cell not yet reached in depth.
const undiscovered = -1

// space abstracts the two searchable representations. Both enumerate
// neighbors in grid.Directions order so they return identical paths.
type space interface {
	size() int
	lookup(c grid.Coord) (int, bool)
	coord(id int) grid.Coord
	passable(id int) bool
	appendNeighbors(dst []int, id int) []int
}

// graphSpace searches a prebuilt gridgraph.Graph.
type graphSpace struct{ g *gridgraph.Graph }

func (s graphSpace) size() int                               { return s.g.Len() }
func (s graphSpace) lookup(c grid.Coord) (int, bool)         { return s.g.ID(c) }
func (s graphSpace) coord(id int) grid.Coord                 { return s.g.Coordinate(id) }
func (s graphSpace) passable(id int) bool                    { return s.g.Passable(id) }
func (s graphSpace) appendNeighbors(dst []int, id int) []int { return s.g.AppendNeighbors(dst, id) }

// gridSpace searches a grid by coordinate arithmetic, without a Graph.
type gridSpace struct{ g *grid.Grid }

func (s gridSpace) size() int               { return s.g.Len() }
func (s gridSpace) coord(id int) grid.Coord { return s.g.Coordinate(id) }
func (s gridSpace) passable(id int) bool    { return s.g.CellAt(id) == grid.Open }

func (s gridSpace) lookup(c grid.Coord) (int, bool) {
	if !s.g.InBounds(c) {
		return undiscovered, false
	}
	return s.g.Index(c), true
}

func (s gridSpace) appendNeighbors(dst []int, id int) []int {
	c := s.g.Coordinate(id)
	for _, d := range grid.Directions {
		nc := c.Add(d.Offset())
		if s.g.InBounds(nc) {
			dst = append(dst, s.g.Index(nc))
		}
	}
	return dst
}

// walker encapsulates the mutable state of one search call. It is never
// shared, so the searched graph itself is never written to.
type walker struct {
	sp     space
	opts   Options
	queue  []int
	head   int
	depth  []int
	parent []int
	order  []int
	buf    []int
}

// FindPath returns a minimum-hop path from start to end over g.
//
// Among equal-length paths the one returned is fixed by the FIFO frontier
// and the neighbor order Left, Right, Up, Down.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// and an error wrapping ErrNoPath when no path exists; the not-found error
// also wraps ErrOutOfBounds or ErrBlocked when an endpoint is unusable.
// When start == end and the cell is open the single-cell path is returned
// without expanding the frontier.
func FindPath(g *gridgraph.Graph, start, end grid.Coord, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return findPath(graphSpace{g: g}, start, end, opts)
}

// FindPathInGrid is FindPath over a grid without building a Graph. It
// applies the same neighbor order and returns the same path.
func FindPathInGrid(g *grid.Grid, start, end grid.Coord, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return findPath(gridSpace{g: g}, start, end, opts)
}

// Search runs a full traversal of the component reachable from start and
// returns distances, visit order and parent links for PathTo.
// Errors are those of FindPath for the start endpoint.
func Search(g *gridgraph.Graph, start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sp := graphSpace{g: g}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	src, err := endpoint(sp, "start", start)
	if err != nil {
		return nil, err
	}
	w := newWalker(sp, o)
	if _, err := w.run(src, undiscovered); err != nil {
		return nil, err
	}
	res := &Result{
		Start:  start,
		Order:  make([]grid.Coord, len(w.order)),
		sp:     sp,
		depth:  w.depth,
		parent: w.parent,
	}
	for i, id := range w.order {
		res.Order[i] = sp.coord(id)
	}
	return res, nil
}

func findPath(sp space, start, end grid.Coord, opts []Option) (Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	src, err := endpoint(sp, "start", start)
	if err != nil {
		return nil, err
	}
	dst, err := endpoint(sp, "end", end)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return Path{start}, nil
	}

	w := newWalker(sp, o)
	found, err := w.run(src, dst)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, end, start)
	}
	return reconstruct(sp, w.parent, dst), nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// endpoint resolves c to an ID and checks that it is open.
func endpoint(sp space, role string, c grid.Coord) (int, error) {
	id, ok := sp.lookup(c)
	if !ok {
		return undiscovered, fmt.Errorf("%w: %w: %s %v", ErrNoPath, ErrOutOfBounds, role, c)
	}
	if !sp.passable(id) {
		return undiscovered, fmt.Errorf("%w: %w: %s %v", ErrNoPath, ErrBlocked, role, c)
	}
	return id, nil
}

func newWalker(sp space, o Options) *walker {
	n := sp.size()
	w := &walker{
		sp:     sp,
		opts:   o,
		queue:  make([]int, 0, n),
		depth:  make([]int, n),
		parent: make([]int, n),
		buf:    make([]int, 0, len(grid.Directions)),
	}
	for i := range w.depth {
		w.depth[i] = undiscovered
		w.parent[i] = undiscovered
	}
	return w
}

// run drains the frontier from src until dst is dequeued, the frontier is
// empty, the context is done or a hook fails. dst == undiscovered runs a
// full traversal and reports true.
func (w *walker) run(src, dst int) (bool, error) {
	w.enqueue(src, 0, undiscovered)
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		u := w.dequeue()
		if err := w.visit(u); err != nil {
			return false, err
		}
		if u == dst {
			return true, nil
		}
		w.enqueueNeighbors(u)
	}
	return dst == undiscovered, nil
}

// enqueue records id at depth d with its parent, calls OnEnqueue and appends
// it to the frontier. A cell is enqueued at most once, which yields the same
// parent as keeping every candidate path and skipping closed cells on
// dequeue: the first entry to reach a cell is always the first dequeued.
func (w *walker) enqueue(id, d, parent int) {
	w.depth[id] = d
	w.parent[id] = parent
	w.opts.OnEnqueue(w.sp.coord(id), d)
	w.queue = append(w.queue, id)
}

// dequeue pops the head of the frontier and invokes OnDequeue.
func (w *walker) dequeue() int {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(w.sp.coord(id), w.depth[id])
	return id
}

// visit closes the cell: it is recorded in order and OnVisit is called.
func (w *walker) visit(id int) error {
	w.order = append(w.order, id)
	if err := w.opts.OnVisit(w.sp.coord(id), w.depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", w.sp.coord(id), err)
	}
	return nil
}

// enqueueNeighbors enqueues every undiscovered, open neighbor of u that
// respects MaxDepth, in grid.Directions order.
func (w *walker) enqueueNeighbors(u int) {
	next := w.depth[u] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.buf = w.sp.appendNeighbors(w.buf[:0], u)
	for _, v := range w.buf {
		if w.depth[v] != undiscovered || !w.sp.passable(v) {
			continue
		}
		w.enqueue(v, next, u)
	}
}

// reconstruct follows parent links back from dst and returns the path in
// start → dst order.
func reconstruct(sp space, parent []int, dst int) Path {
	var path Path
	for at := dst; at != undiscovered; at = parent[at] {
		path = append(path, sp.coord(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
