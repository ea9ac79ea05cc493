// Package td generates square mazes by recursive division and finds
// fewest-move paths through binary grids.
//
// What is in here?
//
//   - Grid model: rectangular Open/Blocked cells, coordinates, the canonical
//     neighbor order Left, Right, Up, Down
//   - Maze generator: closed border, bottom-row entrances, alternating walls
//     with one hole each, connected by construction
//   - Graph builder: one node per cell, neighbor links as arena indices
//   - Path search: BFS with hooks, depth limits and per-call state, safe for
//     concurrent queries on one graph
//   - Text rendering and a mazectl command line
//
// Layout:
//
//	grid/                Grid, Cell, Coord, Direction; ASCII parse/print
//	maze/                Generate, options, wall tracing
//	gridgraph/           Build, Node, Graph, ConnectedComponents
//	bfs/                 FindPath, FindPathInGrid, Search, Path
//	render/              Text drawing with path/failure overlays and colors
//	internal/config/     defaults → YAML → .env → MAZE_* variables
//	internal/logging/    slog setup
//	internal/format/     summary tables
//	internal/mazefile/   YAML maze files
//	cmd/mazectl/         generate, solve, verify, version
//
// Quick example:
//
//	m, _ := maze.Generate(21, maze.WithSeed(7))
//	gr, _ := gridgraph.Build(m.Grid)
//	path, err := bfs.FindPath(gr, m.Entrance, grid.Pos(1, 1))
//	if errors.Is(err, bfs.ErrNoPath) {
//		// unreachable, blocked or out-of-bounds endpoint
//	}
//	fmt.Print(render.String(m.Grid, render.WithPath(path)))
package td
