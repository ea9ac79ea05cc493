// Package bfs finds fewest-move paths between two cells of a binary grid.
//
// What
//
//   - Explore cells in non-decreasing hop distance from a start cell.
//   - FindPath searches a prebuilt gridgraph.Graph; FindPathInGrid walks a
//     *grid.Grid by coordinate arithmetic and returns the identical path.
//   - Search runs a full traversal and returns a Result with:
//   - Order: visit sequence
//   - Depth(c): hop distance from the start
//   - PathTo(c): shortest path to any reached cell
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell joins the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when closing a cell; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	The frontier is FIFO and neighbors are enqueued Left, Right, Up, Down.
//	A cell is claimed by the first frontier entry that reaches it, so among
//	equal-length paths the returned one is fixed by that order alone.
//
// Concurrency
//
//	All per-search state (frontier, depth and parent arrays) is allocated by
//	the call. A Graph or Grid may be searched from many goroutines at once
//	as long as nobody mutates it.
//
// Complexity (N = Height×Width)
//
//   - Time:   O(N)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(N)   (frontier, depth and parent arrays)
//
// Usage
//
//	gr, _ := gridgraph.Build(g)
//	path, err := bfs.FindPath(gr, grid.Pos(0, 0), grid.Pos(2, 0))
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // unreachable, blocked or out-of-bounds endpoint
//	case err != nil:
//	    // ErrGraphNil, ErrOptionViolation, context or hook error
//	}
//
//	// With functional options:
//	path, err = bfs.FindPath(
//	    gr, start, end,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(64),
//	    bfs.WithOnVisit(func(c grid.Coord, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph or grid pointer is nil.
//   - ErrNoPath           if the end is unreachable; also wrapped by the two below.
//   - ErrOutOfBounds      if an endpoint lies outside the grid.
//   - ErrBlocked          if an endpoint is a Blocked cell.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit and ctx.Err().
package bfs
