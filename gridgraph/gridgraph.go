// Package gridgraph provides the graph view of a binary grid used by the
// breadth-first path search. It supports:
//
//   - Arena construction with one Node per cell
//   - Coordinate ↔ node ID lookup by row-major index
//   - 4-connected neighbor links in grid.Directions order
//   - Connected components of Open cells
package gridgraph

import (
	"github.com/bt4R9/TD/grid"
)

// Build constructs a Graph from g. Cells are visited in row-major order; each
// visit gets-or-creates the node for the cell and for each in-bounds
// neighbor, so every coordinate maps to exactly one node regardless of the
// order in which it is first reached.
// Returns ErrGridNil if g is nil.
// Algorithmic complexity: O(W×H) time and memory.
func Build(g *grid.Grid) (*Graph, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	gr := &Graph{
		height: g.Height(),
		width:  g.Width(),
		nodes:  make([]Node, g.Len()),
	}
	for y := 0; y < gr.height; y++ {
		for x := 0; x < gr.width; x++ {
			c := grid.Pos(y, x)
			n := gr.getOrCreate(g, c)
			for _, d := range grid.Directions {
				nc := c.Add(d.Offset())
				if !g.InBounds(nc) {
					continue
				}
				n.Links[d] = gr.getOrCreate(g, nc).ID
			}
		}
	}
	return gr, nil
}

// getOrCreate returns the arena node for c, initializing it on first use.
func (gr *Graph) getOrCreate(g *grid.Grid, c grid.Coord) *Node {
	id := gr.index(c)
	n := &gr.nodes[id]
	if n.made {
		return n
	}
	n.ID = id
	n.Coord = c
	n.Cell = g.CellAt(id)
	n.Links = [4]int{NoNeighbor, NoNeighbor, NoNeighbor, NoNeighbor}
	n.made = true
	return n
}

// Height returns the number of grid rows.
func (gr *Graph) Height() int { return gr.height }

// Width returns the number of grid columns.
func (gr *Graph) Width() int { return gr.width }

// Len returns the number of nodes, Height×Width.
func (gr *Graph) Len() int { return len(gr.nodes) }

// InBounds reports whether c has a node.
// Complexity: O(1).
func (gr *Graph) InBounds(c grid.Coord) bool {
	return c.Row >= 0 && c.Row < gr.height && c.Col >= 0 && c.Col < gr.width
}

// ID returns the node ID of c and whether c is in bounds.
func (gr *Graph) ID(c grid.Coord) (int, bool) {
	if !gr.InBounds(c) {
		return NoNeighbor, false
	}
	return gr.index(c), true
}

// Node returns the node at c, or false if c is out of bounds.
// The returned node must not be modified.
func (gr *Graph) Node(c grid.Coord) (*Node, bool) {
	id, ok := gr.ID(c)
	if !ok {
		return nil, false
	}
	return &gr.nodes[id], true
}

// NodeAt returns the node with the given ID. id must be in [0, Len()).
func (gr *Graph) NodeAt(id int) *Node {
	return &gr.nodes[id]
}

// Passable reports whether node id is Open.
func (gr *Graph) Passable(id int) bool {
	return gr.nodes[id].Cell == grid.Open
}

// Neighbors returns the IDs linked to node id in grid.Directions order,
// skipping absent slots.
func (gr *Graph) Neighbors(id int) []int {
	return gr.AppendNeighbors(nil, id)
}

// AppendNeighbors appends the neighbor IDs of id to dst, in grid.Directions
// order, and returns the extended slice. Search loops reuse dst to avoid an
// allocation per node.
func (gr *Graph) AppendNeighbors(dst []int, id int) []int {
	for _, nb := range gr.nodes[id].Links {
		if nb != NoNeighbor {
			dst = append(dst, nb)
		}
	}
	return dst
}

// Grid returns a new grid holding the node classifications.
func (gr *Graph) Grid() *grid.Grid {
	g, _ := grid.New(gr.height, gr.width)
	for i := range gr.nodes {
		if gr.nodes[i].Cell == grid.Blocked {
			_ = g.Set(gr.nodes[i].Coord, grid.Blocked)
		}
	}
	return g
}

// index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gr *Graph) index(c grid.Coord) int {
	return c.Row*gr.width + c.Col
}

// Coordinate converts a node ID back to its Coord.
// Complexity: O(1).
func (gr *Graph) Coordinate(id int) grid.Coord {
	return grid.Coord{Row: id / gr.width, Col: id % gr.width}
}
