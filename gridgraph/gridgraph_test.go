package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
)

//----------------------------------------------------------------------------//
// Build and lookup Tests
//----------------------------------------------------------------------------//

// TestBuild_Nil verifies that Build rejects a nil grid.
func TestBuild_Nil(t *testing.T) {
	if _, err := gridgraph.Build(nil); !errors.Is(err, gridgraph.ErrGridNil) {
		t.Errorf("Build(nil) error = %v; want ErrGridNil", err)
	}
}

// TestBuild_OneNodePerCell checks node count, identity and classification.
func TestBuild_OneNodePerCell(t *testing.T) {
	g := grid.MustParse(`
.#.
..#
`)
	gr, err := gridgraph.Build(g)
	require.NoError(t, err)

	assert.Equal(t, 2, gr.Height())
	assert.Equal(t, 3, gr.Width())
	require.Equal(t, g.Height()*g.Width(), gr.Len())

	seen := make(map[grid.Coord]int, gr.Len())
	for id := 0; id < gr.Len(); id++ {
		n := gr.NodeAt(id)
		assert.Equal(t, id, n.ID)
		seen[n.Coord]++

		cell, err := g.At(n.Coord)
		require.NoError(t, err)
		assert.Equal(t, cell, n.Cell, "classification at %v", n.Coord)
		assert.Equal(t, cell == grid.Open, gr.Passable(id))
		assert.Equal(t, n.Coord, gr.Coordinate(id))
	}
	assert.Len(t, seen, gr.Len(), "every coordinate has exactly one node")

	n, ok := gr.Node(grid.Pos(1, 2))
	require.True(t, ok)
	assert.Equal(t, 5, n.ID)
	assert.False(t, n.Passable())
	assert.True(t, gr.Grid().Equal(g), "Grid() reproduces the classification")
}

// TestNode_OutOfBounds ensures out-of-range lookups report false.
func TestNode_OutOfBounds(t *testing.T) {
	gr, err := gridgraph.Build(grid.MustParse("..\n.."))
	require.NoError(t, err)

	for _, c := range []grid.Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 2}} {
		_, ok := gr.Node(c)
		assert.False(t, ok, "Node(%v)", c)
		id, ok := gr.ID(c)
		assert.False(t, ok, "ID(%v)", c)
		assert.Equal(t, gridgraph.NoNeighbor, id)
	}
}

//----------------------------------------------------------------------------//
// Neighbor link Tests
//----------------------------------------------------------------------------//

// TestLinks_OrderAndEdges checks the Left, Right, Up, Down slot order and the
// missing slots along the border of a 3×3 grid.
func TestLinks_OrderAndEdges(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	gr, err := gridgraph.Build(g)
	require.NoError(t, err)

	center, _ := gr.Node(grid.Pos(1, 1))
	assert.Equal(t, [4]int{3, 5, 1, 7}, center.Links)
	assert.Equal(t, []int{3, 5, 1, 7}, gr.Neighbors(center.ID))
	assert.Equal(t, 4, center.Degree())

	corner, _ := gr.Node(grid.Pos(0, 0))
	assert.Equal(t, gridgraph.NoNeighbor, corner.Neighbor(grid.Left))
	assert.Equal(t, 1, corner.Neighbor(grid.Right))
	assert.Equal(t, gridgraph.NoNeighbor, corner.Neighbor(grid.Up))
	assert.Equal(t, 3, corner.Neighbor(grid.Down))
	assert.Equal(t, []int{1, 3}, gr.Neighbors(corner.ID))
	assert.Equal(t, 2, corner.Degree())

	edge, _ := gr.Node(grid.Pos(2, 1))
	assert.Equal(t, []int{6, 8, 4}, gr.Neighbors(edge.ID))
}

// TestLinks_SymmetricAndAxisAligned verifies that every link is returned by
// the neighbor and that linked cells differ by exactly one step on one axis.
func TestLinks_SymmetricAndAxisAligned(t *testing.T) {
	g := grid.MustParse(`
#.#..
..#.#
#....
.##.#
`)
	gr, err := gridgraph.Build(g)
	require.NoError(t, err)

	for id := 0; id < gr.Len(); id++ {
		a := gr.NodeAt(id)
		for _, d := range grid.Directions {
			nb := a.Neighbor(d)
			want := a.Coord.Add(d.Offset())
			if !g.InBounds(want) {
				assert.Equal(t, gridgraph.NoNeighbor, nb, "%v %v", a.Coord, d)
				continue
			}
			require.NotEqual(t, gridgraph.NoNeighbor, nb, "%v %v", a.Coord, d)
			b := gr.NodeAt(nb)
			assert.Equal(t, want, b.Coord)
			assert.Contains(t, gr.Neighbors(nb), id, "link %v→%v is not symmetric", a.Coord, b.Coord)
		}
	}
}

// TestAppendNeighbors_ReusesBuffer checks that AppendNeighbors appends to dst.
func TestAppendNeighbors_ReusesBuffer(t *testing.T) {
	gr, err := gridgraph.Build(grid.MustParse("..\n.."))
	require.NoError(t, err)

	buf := make([]int, 0, 4)
	buf = gr.AppendNeighbors(buf, 0)
	assert.Equal(t, []int{1, 2}, buf)
	buf = gr.AppendNeighbors(buf[:0], 3)
	assert.Equal(t, []int{2, 1}, buf)
}

// TestBuild_SingleCell covers the 1×1 degenerate grid.
func TestBuild_SingleCell(t *testing.T) {
	gr, err := gridgraph.Build(grid.MustParse("."))
	require.NoError(t, err)
	require.Equal(t, 1, gr.Len())
	assert.Empty(t, gr.Neighbors(0))
	assert.Equal(t, 0, gr.NodeAt(0).Degree())
}
