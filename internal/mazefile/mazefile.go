// Package mazefile stores generated mazes as YAML so a layout can be
// reloaded and solved later without regenerating it.
//
// The document looks like:
//
//	size: 7
//	seed: 42
//	entrances:
//	  - {row: 6, col: 3}
//	rows:
//	  - "#######"
//	  - "#.....#"
//	  ...
package mazefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/maze"
)

// ErrInvalidFile is returned when a document does not describe a usable maze.
var ErrInvalidFile = errors.New("mazefile: invalid maze file")

// Point is a cell coordinate in a maze file.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// File is the on-disk form of a maze.
type File struct {
	Size      int      `yaml:"size"`
	Seed      int64    `yaml:"seed,omitempty"`
	Entrances []Point  `yaml:"entrances,flow"`
	Rows      []string `yaml:"rows"`
}

// FromMaze converts m to its file form.
func FromMaze(m *maze.Maze) File {
	f := File{
		Size:      m.Size(),
		Seed:      m.Seed,
		Entrances: make([]Point, len(m.Entrances)),
		Rows:      strings.Split(strings.TrimSuffix(m.Grid.String(), "\n"), "\n"),
	}
	for i, e := range m.Entrances {
		f.Entrances[i] = Point{Row: e.Row, Col: e.Col}
	}
	return f
}

// Maze validates f and converts it back to a maze.
func (f File) Maze() (*maze.Maze, error) {
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidFile)
	}
	g, err := grid.Parse(strings.Join(f.Rows, "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if g.Height() != f.Size || g.Width() != f.Size {
		return nil, fmt.Errorf("%w: size %d but grid is %dx%d", ErrInvalidFile, f.Size, g.Height(), g.Width())
	}
	if len(f.Entrances) == 0 {
		return nil, fmt.Errorf("%w: no entrances", ErrInvalidFile)
	}
	m := &maze.Maze{Grid: g, Seed: f.Seed, Entrances: make([]grid.Coord, len(f.Entrances))}
	for i, p := range f.Entrances {
		c := grid.Pos(p.Row, p.Col)
		if !g.IsOpen(c) {
			return nil, fmt.Errorf("%w: entrance %v is not an open cell", ErrInvalidFile, c)
		}
		m.Entrances[i] = c
	}
	m.Entrance = m.Entrances[0]
	return m, nil
}

// Encode writes m to w as YAML.
func Encode(w io.Writer, m *maze.Maze) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMaze(m)); err != nil {
		return fmt.Errorf("mazefile: encode: %w", err)
	}
	return enc.Close()
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*maze.Maze, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return f.Maze()
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *maze.Maze) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("mazefile: write %s: %w", path, err)
	}
	return nil
}

// Load reads a maze from path.
func Load(path string) (*maze.Maze, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open %s: %w", path, err)
	}
	defer fh.Close()
	return Decode(fh)
}
