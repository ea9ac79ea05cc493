package gridgraph

import (
	"errors"

	"github.com/bt4R9/TD/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrGridNil indicates a nil *grid.Grid was passed to Build.
	ErrGridNil = errors.New("gridgraph: grid is nil")
)

// NoNeighbor marks an absent link slot.
const NoNeighbor = -1

// Node is a graph vertex for one grid cell.
// Links holds the neighbor ID per grid.Direction, NoNeighbor at the border.
type Node struct {
	ID    int        // row-major arena index
	Coord grid.Coord // position in the source grid
	Cell  grid.Cell  // Open or Blocked, copied at build time
	Links [4]int     // neighbor IDs indexed by grid.Direction
	made  bool       // set once by the builder's get-or-create
}

// Passable reports whether the node is Open.
func (n *Node) Passable() bool {
	return n.Cell == grid.Open
}

// Neighbor returns the ID linked in direction d, or NoNeighbor.
func (n *Node) Neighbor(d grid.Direction) int {
	return n.Links[d]
}

// Degree returns the number of in-bounds neighbors (2 to 4 on grids of at
// least 2×2).
func (n *Node) Degree() int {
	k := 0
	for _, id := range n.Links {
		if id != NoNeighbor {
			k++
		}
	}
	return k
}

// Graph is the arena of Nodes built from one grid. It is immutable once built.
type Graph struct {
	height, width int
	nodes         []Node
}
