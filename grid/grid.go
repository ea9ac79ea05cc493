package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular matrix of Cells stored in row-major order.
// The zero value is not usable; build one with New, FromRows or Parse.
type Grid struct {
	height, width int
	cells         []Cell
}

// New returns a height×width grid with every cell Open.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice where 0 is
// Open and any other value is Blocked. The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				g.cells[y*w+x] = Blocked
			}
		}
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns the number of cells, Height×Width.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the cell at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Blocked, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.height, g.width)
	}
	return g.cells[g.Index(c)], nil
}

// IsOpen reports whether c is in bounds and Open.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] == Open
}

// Set stores v at c. Generators use it while carving; callers holding a
// finished grid should treat it as read-only.
func (g *Grid) Set(c Coord, v Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.height, g.width)
	}
	g.cells[g.Index(c)] = v
	return nil
}

// Index maps c to its row-major index: Row*Width + Col.
// c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// CellAt returns the cell at a row-major index.
func (g *Grid) CellAt(idx int) Cell {
	return g.cells[idx]
}

// Rows returns a fresh [][]int view, rows[y][x] being 0 for Open and 1 for
// Blocked, for callers that index terrain as rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		for x := range rows[y] {
			rows[y][x] = int(g.cells[y*g.width+x])
		}
	}
	return rows
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one line per row, '#' for Blocked and '.' for Open.
// The output round-trips through Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Blocked {
				sb.WriteByte(BlockedGlyph)
			} else {
				sb.WriteByte(OpenGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
