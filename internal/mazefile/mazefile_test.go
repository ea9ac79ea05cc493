package mazefile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/internal/mazefile"
	"github.com/bt4R9/TD/maze"
)

func TestSaveLoad(t *testing.T) {
	m, err := maze.Generate(15, maze.WithSeed(3), maze.WithEntrances(2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, mazefile.Save(path, m))

	got, err := mazefile.Load(path)
	require.NoError(t, err)
	assert.True(t, m.Grid.Equal(got.Grid), "grid changed:\n%s\nvs\n%s", m.Grid, got.Grid)
	assert.Equal(t, m.Entrances, got.Entrances)
	assert.Equal(t, m.Entrance, got.Entrance)
	assert.Equal(t, m.Seed, got.Seed)
}

func TestEncode_Layout(t *testing.T) {
	m, err := maze.Generate(3, maze.WithSeed(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mazefile.Encode(&buf, m))
	want := `size: 3
seed: 1
entrances: [{row: 2, col: 1}]
rows:
  - '###'
  - '#.#'
  - '#.#'
`
	assert.Equal(t, want, buf.String())
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"NotYAML":      "rows: [",
		"UnknownField": "size: 3\nwalls: 4\n",
		"NoRows":       "size: 3\nentrances: [{row: 2, col: 1}]\n",
		"BadGlyph":     "size: 3\nentrances: [{row: 2, col: 1}]\nrows: ['###', '#x#', '#.#']\n",
		"SizeMismatch": "size: 4\nentrances: [{row: 2, col: 1}]\nrows: ['###', '#.#', '#.#']\n",
		"Ragged":       "size: 3\nentrances: [{row: 2, col: 1}]\nrows: ['###', '#.', '#.#']\n",
		"NoEntrance":   "size: 3\nrows: ['###', '#.#', '#.#']\n",
		"BlockedDoor":  "size: 3\nentrances: [{row: 2, col: 0}]\nrows: ['###', '#.#', '#.#']\n",
		"OutsideDoor":  "size: 3\nentrances: [{row: 3, col: 1}]\nrows: ['###', '#.#', '#.#']\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mazefile.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, mazefile.ErrInvalidFile)
		})
	}
}

func TestDecode_HandWritten(t *testing.T) {
	doc := `
size: 5
entrances:
  - {row: 4, col: 3}
rows:
  - "#####"
  - "#...#"
  - "#.###"
  - "#...#"
  - "###.#"
`
	m, err := mazefile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(4, 3), m.Entrance)
	assert.Equal(t, 5, m.Size())
	assert.Zero(t, m.Seed)
	assert.False(t, m.Grid.IsOpen(grid.Pos(2, 2)))
}

func TestLoad_Missing(t *testing.T) {
	_, err := mazefile.Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
