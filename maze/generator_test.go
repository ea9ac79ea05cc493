package maze_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bt4R9/TD/bfs"
	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
	"github.com/bt4R9/TD/maze"
)

// TestGenerate_InvalidDimension verifies that out-of-range sizes are
// rejected rather than clamped.
func TestGenerate_InvalidDimension(t *testing.T) {
	for _, size := range []int{-5, 0, 1, 2, maze.MaxSize + 1} {
		m, err := maze.Generate(size, maze.WithSeed(1))
		assert.ErrorIs(t, err, maze.ErrInvalidDimension, "size %d", size)
		assert.Nil(t, m, "size %d", size)
	}
}

// TestGenerate_OptionErrors covers invalid entrance counts.
func TestGenerate_OptionErrors(t *testing.T) {
	_, err := maze.Generate(9, maze.WithEntrances(0))
	assert.ErrorIs(t, err, maze.ErrOptionViolation)

	_, err = maze.Generate(5, maze.WithEntrances(3))
	assert.ErrorIs(t, err, maze.ErrTooManyEntrances)

	_, err = maze.Generate(5, maze.WithEntrances(2), maze.WithSeed(3))
	assert.NoError(t, err)
}

// TestGenerate_Smallest pins the layouts that have no room for a wall.
func TestGenerate_Smallest(t *testing.T) {
	cases := map[int]string{
		3: "###\n#.#\n#.#\n",
		4: "####\n#..#\n#..#\n#.##\n",
	}
	for size, want := range cases {
		m, err := maze.Generate(size, maze.WithSeed(99))
		require.NoError(t, err)
		assert.Equal(t, want, m.Grid.String(), "size %d", size)
		assert.Equal(t, grid.Pos(size-1, 1), m.Entrance)
		assert.Equal(t, size, m.Size())
	}
}

// checkMaze asserts the structural guarantees of a generated maze.
func checkMaze(t *testing.T, m *maze.Maze) {
	t.Helper()
	g := m.Grid
	n := m.Size()
	require.Equal(t, n, g.Width())

	entrance := make(map[grid.Coord]bool, len(m.Entrances))
	for _, e := range m.Entrances {
		entrance[e] = true
		assert.Equal(t, n-1, e.Row, "entrance %v not on bottom row", e)
		assert.Equal(t, 1, e.Col%2, "entrance %v on even column", e)
		assert.True(t, g.IsOpen(e.Add(grid.Up.Offset())), "cell above entrance %v blocked", e)
	}
	assert.Equal(t, m.Entrances[0], m.Entrance)

	// border
	for i := 0; i < n; i++ {
		for _, c := range []grid.Coord{grid.Pos(0, i), grid.Pos(i, 0), grid.Pos(i, n-1), grid.Pos(n-1, i)} {
			if entrance[c] {
				assert.True(t, g.IsOpen(c), "entrance %v blocked", c)
				continue
			}
			assert.False(t, g.IsOpen(c), "border cell %v open", c)
		}
	}

	// odd/odd cells never get a wall
	for r := 1; r < n-1; r += 2 {
		for c := 1; c < n-1; c += 2 {
			assert.True(t, g.IsOpen(grid.Pos(r, c)), "room cell (%d,%d) blocked", r, c)
		}
	}

	// every open cell is reachable from the entrance
	gr, err := gridgraph.Build(g)
	require.NoError(t, err)
	res, err := bfs.Search(gr, m.Entrance)
	require.NoError(t, err)
	assert.Equal(t, g.OpenCount(), len(res.Order), "unreachable open cells")
	assert.Len(t, gr.ConnectedComponents(), 1)
}

// TestGenerate_Properties checks the guarantees across sizes and seeds,
// odd and even alike.
func TestGenerate_Properties(t *testing.T) {
	for _, size := range []int{5, 6, 7, 10, 21, 32, 51} {
		for seed := int64(0); seed < 8; seed++ {
			m, err := maze.Generate(size, maze.WithSeed(seed))
			require.NoError(t, err, "size %d seed %d", size, seed)
			assert.Equal(t, seed, m.Seed)
			assert.Len(t, m.Entrances, 1)
			checkMaze(t, m)
		}
	}
}

// TestGenerate_MultipleEntrances fills every entrance slot.
func TestGenerate_MultipleEntrances(t *testing.T) {
	require.Equal(t, 5, maze.EntranceSlots(11))
	assert.Equal(t, 0, maze.EntranceSlots(2))

	m, err := maze.Generate(11, maze.WithSeed(4), maze.WithEntrances(5))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 10, Col: 1}, {Row: 10, Col: 3}, {Row: 10, Col: 5}, {Row: 10, Col: 7}, {Row: 10, Col: 9}}, m.Entrances)
	checkMaze(t, m)

	m, err = maze.Generate(25, maze.WithSeed(4), maze.WithEntrances(3))
	require.NoError(t, err)
	require.Len(t, m.Entrances, 3)
	assert.Less(t, m.Entrances[0].Col, m.Entrances[1].Col)
	assert.Less(t, m.Entrances[1].Col, m.Entrances[2].Col)
	checkMaze(t, m)
}

// TestGenerate_Deterministic verifies that a seed fixes the layout.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(31, maze.WithSeed(2024))
	require.NoError(t, err)
	b, err := maze.Generate(31, maze.WithSeed(2024))
	require.NoError(t, err)
	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.Entrance, b.Entrance)

	c, err := maze.Generate(31, maze.WithRand(rand.New(rand.NewSource(2024))))
	require.NoError(t, err)
	assert.True(t, a.Grid.Equal(c.Grid), "WithRand and WithSeed disagree on the same seed")
	assert.Zero(t, c.Seed)

	d, err := maze.Generate(31, maze.WithSeed(2025))
	require.NoError(t, err)
	assert.False(t, a.Grid.Equal(d.Grid), "different seeds produced the same maze")
}

// TestGenerate_OnWall checks wall placement reported through the hook.
func TestGenerate_OnWall(t *testing.T) {
	var walls []maze.Wall
	m, err := maze.Generate(41, maze.WithSeed(5), maze.WithOnWall(func(w maze.Wall) {
		walls = append(walls, w)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, walls)

	first := walls[0]
	assert.Equal(t, maze.Horizontal, first.Orientation)
	assert.Equal(t, 0, first.Depth)
	assert.Equal(t, 1, first.From)
	assert.Equal(t, 39, first.To)

	for _, w := range walls {
		assert.Zero(t, w.At%2, "wall %+v on odd line", w)
		assert.Equal(t, 1, w.From%2, "wall %+v starts on even cell", w)
		assert.Equal(t, 1, w.To%2, "wall %+v ends on even cell", w)
		wantOrient := maze.Horizontal
		if w.Depth%2 == 1 {
			wantOrient = maze.Vertical
		}
		assert.Equal(t, wantOrient, w.Orientation, "wall %+v", w)

		along := w.Hole.Col
		if w.Orientation == maze.Vertical {
			along = w.Hole.Row
			assert.Equal(t, w.At, w.Hole.Col)
		} else {
			assert.Equal(t, w.At, w.Hole.Row)
		}
		assert.Equal(t, 1, along%2, "hole %v on even cell", w.Hole)
		assert.GreaterOrEqual(t, along, w.From)
		assert.LessOrEqual(t, along, w.To)
		assert.True(t, m.Grid.IsOpen(w.Hole), "hole %v blocked", w.Hole)
	}
	assert.Equal(t, "horizontal", maze.Horizontal.String())
	assert.Equal(t, "vertical", maze.Vertical.String())
}

// TestGenerate_Logger verifies the debug summary.
func TestGenerate_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := maze.Generate(11, maze.WithSeed(8), maze.WithLogger(l))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "maze generated")
	assert.Contains(t, out, "size=11")
	assert.Contains(t, out, "seed=8")
}

// TestGenerate_Concurrent generates mazes from many goroutines.
func TestGenerate_Concurrent(t *testing.T) {
	want, err := maze.Generate(25, maze.WithSeed(11))
	require.NoError(t, err)

	done := make(chan *maze.Maze, 8)
	for i := 0; i < 8; i++ {
		go func() {
			m, _ := maze.Generate(25, maze.WithSeed(11))
			done <- m
		}()
	}
	for i := 0; i < 8; i++ {
		m := <-done
		require.NotNil(t, m)
		assert.True(t, want.Grid.Equal(m.Grid))
	}
}
