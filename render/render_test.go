package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bt4R9/TD/bfs"
	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/render"
)

func detour(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	return g
}

func TestText_Terrain(t *testing.T) {
	g := detour(t)
	assert.Equal(t, g.String(), render.String(g))
}

func TestText_Path(t *testing.T) {
	g := detour(t)
	p, err := bfs.FindPathInGrid(g, grid.Pos(0, 0), grid.Pos(2, 1))
	require.NoError(t, err)

	want := "***\n##*\n.**\n"
	assert.Equal(t, want, render.String(g, render.WithPath(p)))
}

func TestText_Failure(t *testing.T) {
	g := grid.MustParse(`
.....
.###.
.#.#.
.###.
.....
`)
	got := render.String(g,
		render.WithPath(bfs.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}),
		render.WithFailure(grid.Pos(0, 0), grid.Pos(2, 2)),
	)
	want := strings.Join([]string{
		"X....",
		".###.",
		".#X#.",
		".###.",
		".....",
	}, "\n") + "\n"
	assert.Equal(t, want, got, "failure replaces the path")

	// out-of-bounds endpoints are skipped
	got = render.String(g, render.WithFailure(grid.Pos(-1, 0), grid.Pos(4, 4)))
	assert.True(t, strings.HasSuffix(got, "....X\n"), got)
}

func TestText_Glyphs(t *testing.T) {
	g := detour(t)
	gl := render.Glyphs{Open: ' ', Blocked: '█', Path: 'o', Failure: '!'}
	got := render.String(g, render.WithGlyphs(gl), render.WithPath(bfs.Path{{Row: 2, Col: 0}}))
	assert.Equal(t, "   \n██ \no  \n", got)
}

func TestText_Color(t *testing.T) {
	text.EnableColors()
	defer text.DisableColors()

	g := detour(t)
	got := render.String(g, render.WithColor(true))
	assert.Contains(t, got, "\x1b[")
	assert.Equal(t, 3, strings.Count(got, "\n"))
}

func TestText_Errors(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, render.Text(&sb, nil), render.ErrGridNil)

	boom := errors.New("boom")
	assert.ErrorIs(t, render.Text(failWriter{boom}, detour(t)), boom)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }
