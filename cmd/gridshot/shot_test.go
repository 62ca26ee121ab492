package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/palette"
	"github.com/milk9111/pathviz/search"
	"github.com/milk9111/pathviz/world"
)

func assertColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb := palette.RGB(want)
	gr, gg, gb := palette.RGB(got)
	assert.Equal(t, []uint8{wr, wg, wb}, []uint8{gr, gg, gb})
}

func TestRenderCells(t *testing.T) {
	w := world.New(world.Config{Width: 3, Height: 3, MaxStepsPerFrame: 1, Algorithm: search.DijkstraKind})
	g, err := grid.ParseASCII("S#.\n...\n..E")
	require.NoError(t, err)
	w.Grid = g
	w.Complete()
	require.True(t, w.Search().FoundPath())

	p := palette.Default()
	v := world.Viewport{CellSize: 10, CellGap: 2}
	img := Render(w, p, v, false)

	require.Equal(t, 30, img.Bounds().Dx())
	require.Equal(t, 30, img.Bounds().Dy())

	center := func(x, y int) color.Color { return img.At(x*10+4, y*10+4) }
	assertColor(t, p.View(world.ViewStart), center(0, 0))
	assertColor(t, p.View(world.ViewWall), center(1, 0))
	assertColor(t, p.View(world.ViewEnd), center(2, 2))
	assertColor(t, p.View(world.ViewPath), center(0, 1))
	assertColor(t, p.Background, img.At(9, 4))
}

func TestRenderPathLine(t *testing.T) {
	w := world.New(world.Config{Width: 3, Height: 1, MaxStepsPerFrame: 1})
	g, err := grid.ParseASCII("S.E")
	require.NoError(t, err)
	w.Grid = g
	w.Complete()

	p := palette.Default()
	p.Selected = color.RGBA{R: 255, A: 255}
	img := Render(w, p, world.Viewport{CellSize: 20}, true)

	assertColor(t, p.Selected, img.At(30, 10))
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, run("bfs", 7, "", 12, 8, 4, true, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, run("nope", 7, "", 12, 8, 4, false, out))
}
