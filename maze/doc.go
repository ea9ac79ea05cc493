// Package maze generates square binary mazes by recursive division.
//
// What:
//
//   - Generate(size) returns a size×size *grid.Grid whose outer border is
//     Blocked except for the entrance cell(s) on the bottom row.
//   - The interior is split by alternating horizontal and vertical walls,
//     starting horizontal, each wall leaving exactly one hole.
//
// Guarantees:
//
//   - Walls lie on even rows/columns and holes on odd ones, so every cell
//     whose row and column are both odd stays Open. Each hole is therefore
//     flanked by open cells on both sides and every open cell is reachable
//     from the entrance.
//   - Entrances are placed on odd columns, directly below an open cell.
//   - Each call owns its grid buffer and random source; nothing is shared
//     between calls.
//
// Options:
//
//   - WithSeed(seed):     deterministic output for a given seed.
//   - WithRand(r):        caller-supplied *rand.Rand.
//   - WithEntrances(n):   open n distinct bottom-row entrances (default 1).
//   - WithLogger(l):      debug summary of each generated maze.
//   - WithOnWall(fn):     observe each wall as it is carved.
//
// Errors:
//
//   - ErrInvalidDimension: size < MinSize or size > MaxSize.
//   - ErrOptionViolation:  an invalid Option (e.g. zero entrances).
//   - ErrTooManyEntrances: more entrances than odd bottom-row columns.
//
// Complexity: O(size²) time and memory.
package maze
