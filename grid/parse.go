package grid

import (
	"fmt"
	"strings"
)

// Parse reads the ASCII form produced by String: one line per row,
// '#' for Blocked, '.' or ' ' for Open. Leading and trailing blank lines are
// ignored and a trailing '\r' on each line is dropped.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidGlyph.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	rows := make([][]int, 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]int, 0, len(line))
		for x, r := range line {
			switch r {
			case OpenGlyph, ' ':
				row = append(row, 0)
			case BlockedGlyph:
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidGlyph, r, Pos(y, x))
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
