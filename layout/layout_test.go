package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/search"
)

// writeScript puts a disk override under a temporary working directory.
func writeScript(t *testing.T, dir, name, src string) {
	t.Helper()
	scripts := filepath.Join(dir, "prefabs", "scripts")
	require.NoError(t, os.MkdirAll(scripts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scripts, name+".tengo"), []byte(src), 0o644))
}

func TestNamesIncludeShippedScripts(t *testing.T) {
	names := Names()
	for _, want := range []string{"open", "rooms", "spiral"} {
		assert.Contains(t, names, want)
	}
}

func TestName(t *testing.T) {
	for in, want := range map[string]string{
		"rooms":          "rooms",
		"rooms.tengo":    "rooms",
		" spiral.tengo ": "spiral",
		"":               "",
	} {
		assert.Equal(t, want, Name(in), in)
	}
}

func TestApplyOpen(t *testing.T) {
	g := grid.New(10, 6)
	g.Fill(grid.Wall)
	require.NoError(t, NewLibrary().Apply("open", g, 1))

	assert.Equal(t, 0, g.Count(grid.Wall))
	start, end, hasStart, hasEnd := g.FindEndpoints()
	require.True(t, hasStart && hasEnd)
	assert.Equal(t, 14, abs(start.X-end.X)+abs(start.Y-end.Y), "endpoints should sit in opposite corners")
}

func TestApplyRooms(t *testing.T) {
	g := grid.New(50, 50)
	require.NoError(t, NewLibrary().Apply("rooms.tengo", g, 1))

	start, end, hasStart, hasEnd := g.FindEndpoints()
	require.True(t, hasStart && hasEnd)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, start)
	assert.Equal(t, grid.Point{X: 47, Y: 47}, end)

	for x := 0; x < g.Width; x++ {
		c, _ := g.Get(x, 0)
		require.Equal(t, grid.Wall, c)
	}

	alg := search.New(search.BFSKind, start, end)
	search.Run(alg, g, 0)
	assert.True(t, alg.FoundPath(), "every room should be reachable")
}

func TestApplySpiral(t *testing.T) {
	g := grid.New(50, 50)
	require.NoError(t, NewLibrary().Apply("spiral", g, 1))

	start, end, hasStart, hasEnd := g.FindEndpoints()
	require.True(t, hasStart && hasEnd)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, start)
	assert.Equal(t, grid.Point{X: 25, Y: 25}, end)

	alg := search.New(search.DijkstraKind, start, end)
	search.Run(alg, g, 0)
	require.True(t, alg.FoundPath())
	assert.Greater(t, alg.Cost(), 200, "the spiral should force a long detour")
}

func TestApplyCachesCompiledScript(t *testing.T) {
	l := NewLibrary()
	require.NoError(t, l.Apply("open", grid.New(4, 4), 1))
	require.Contains(t, l.cache, "open")

	l.Invalidate("open.tengo")
	assert.NotContains(t, l.cache, "open")

	require.NoError(t, l.Apply("open", grid.New(4, 4), 1))
	require.NoError(t, l.Apply("rooms", grid.New(9, 9), 1))
	l.Invalidate("")
	assert.Empty(t, l.cache)
}

func TestApplyErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeScript(t, dir, "nowall", "x := 1\n")
	writeScript(t, dir, "broken", "wall := func(x, y, w, h) {\n")

	l := NewLibrary()
	err := l.Apply("nowall", grid.New(3, 3), 1)
	assert.ErrorIs(t, err, ErrNoWallFunc)

	assert.Error(t, l.Apply("broken", grid.New(3, 3), 1))
	assert.Error(t, l.Apply("missing", grid.New(3, 3), 1))
	assert.Error(t, l.Apply("open", grid.New(0, 0), 1))
}

func TestApplyFallsBackOnBadEndpoints(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeScript(t, dir, "blocked", `
wall := func(x, y, w, h) { return x == 0 }
start := [0, 0]
end := [-1, -1]
`)

	g := grid.New(6, 4)
	require.NoError(t, NewLibrary().Apply("blocked", g, 3))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.End))
	start, _, _, _ := g.FindEndpoints()
	assert.NotEqual(t, 0, start.X, "start must not land on the wall column")
}

func TestInvalidatePicksUpDiskEdits(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeScript(t, dir, "edit", "wall := func(x, y, w, h) { return false }\n")

	l := NewLibrary()
	g := grid.New(5, 5)
	require.NoError(t, l.Apply("edit", g, 1))
	assert.Equal(t, 0, g.Count(grid.Wall))

	writeScript(t, dir, "edit", "wall := func(x, y, w, h) { return y == 2 }\n")
	require.NoError(t, l.Apply("edit", g, 1))
	assert.Equal(t, 0, g.Count(grid.Wall), "cached script should still be used")

	l.Invalidate("edit")
	require.NoError(t, l.Apply("edit", g, 1))
	assert.Equal(t, 5, g.Count(grid.Wall))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
