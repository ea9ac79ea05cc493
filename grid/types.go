package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidGlyph indicates an unknown character in the ASCII form.
	ErrInvalidGlyph = errors.New("grid: invalid glyph")
)

// Cell is the passability state of one grid position.
type Cell uint8

const (
	// Open cells can be walked through.
	Open Cell = iota
	// Blocked cells are walls.
	Blocked
)

// String returns "open" or "blocked".
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Glyphs used by String and Parse.
const (
	OpenGlyph    = '.'
	BlockedGlyph = '#'
)

// Coord is a zero-based (Row, Col) position.
type Coord struct {
	Row int // Row index, 0 at the top
	Col int // Column index, 0 at the left
}

// Pos is shorthand for Coord{Row: row, Col: col}.
func Pos(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction names one of the four axis-aligned neighbor offsets.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions is the canonical neighbor enumeration order. Graph linking and
// both search entry points iterate it in this order, and the breadth-first
// search breaks ties between equal-length paths by it.
var Directions = [4]Direction{Left, Right, Up, Down}

var offsets = [4]Coord{
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() Coord {
	return offsets[d]
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
