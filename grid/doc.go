// Package grid is the rectangular open/blocked cell matrix that every other
// package of this module consumes.
//
// What:
//
//   - Cell is a binary state: Open (passable) or Blocked (wall).
//   - Grid stores Height×Width cells contiguously in row-major order.
//   - Coord addresses a cell as (Row, Col), zero-based.
//   - Directions fixes the canonical 4-neighbor enumeration order
//     (Left, Right, Up, Down) shared by graph building and path search.
//
// Why:
//
//   - One bounds-checked data model for generated mazes and hand-authored grids.
//   - A single neighbor order makes tie-breaking among equal-length shortest
//     paths reproducible across every search entry point.
//
// Construction:
//
//   - New(h, w):      all-open grid.
//   - FromRows(rows): 0 = open, anything else = blocked (deep copy).
//   - Parse(s):       ASCII form, '#' blocked, '.' or ' ' open.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows, no columns, or non-positive dimensions.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds:    a coordinate outside the grid.
//   - ErrInvalidGlyph:   Parse met an unknown character.
//
// A Grid is not safe for concurrent mutation. Once handed out by a generator
// it is treated as read-only, and concurrent reads are safe.
package grid
