// Package render draws a grid as text, one glyph per cell, optionally with
// a path or a pair of failed endpoints painted over the terrain.
//
// Layers, lowest first:
//
//   - terrain: Open and Blocked cells
//   - path:    every cell of the path given with WithPath
//   - failure: the two endpoints given with WithFailure; a failure drawing
//     never shows a path
//
// With WithColor(true) each glyph is wrapped in an ANSI background color via
// go-pretty's text package: white for open, black for blocked, green for
// the path and red for failures. go-pretty's global switch (text.DisableColors,
// NO_COLOR) still applies.
package render
