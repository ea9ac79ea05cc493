// Package gridgraph turns a *grid.Grid into a node/adjacency graph for
// path search.
//
// What:
//
//   - Graph owns one Node per grid cell in a contiguous arena indexed by the
//     row-major offset Row*Width + Col.
//   - Each Node records its Coord, its Cell classification (Open or Blocked)
//     and the arena IDs of its up-to-4 axis-aligned neighbors.
//   - Neighbor IDs are stored in grid.Directions order: Left, Right, Up, Down.
//   - ConnectedComponents groups Open nodes into 4-connected regions.
//
// Concurrency:
//
//   - No per-search markers live in a Node. A built Graph is never written to
//     again and may be read from many goroutines.
//
// Invariants:
//
//   - Exactly Height×Width nodes; Node(c).Coord == c.
//   - If A lists B as neighbor then B lists A.
//   - Blocked nodes keep their links; searches skip them.
//
// Complexity:
//
//   - Build:               O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrGridNil: Build was given a nil grid.
package gridgraph
