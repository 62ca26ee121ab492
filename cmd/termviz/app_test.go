package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/search"
	"github.com/milk9111/pathviz/world"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 10)
	t.Cleanup(screen.Fini)

	w := world.New(world.Config{Width: 5, Height: 4, MaxStepsPerFrame: 100, Algorithm: search.BFSKind})
	g, err := grid.ParseASCII("S....\n.###.\n.....\n....E")
	require.NoError(t, err)
	w.Grid = g
	return NewApp(screen, w, prefabs.DefaultVisualizerSpec()), screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"flags win", 10, 5, 80, 24, 10, 5},
		{"fit terminal", 0, 0, 80, 24, 40, 22},
		{"tiny terminal", 0, 0, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitGrid(tt.w, tt.h, tt.cols, tt.rows)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestKeyInputCommands(t *testing.T) {
	app, _ := newTestApp(t)
	app.cursor = grid.Point{X: 2, Y: 2}

	in, quit := app.keyInput(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.False(t, quit)
	assert.True(t, in.CycleAlgorithm)

	in, _ = app.keyInput(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	require.NotNil(t, in.ToggleWall)
	assert.Equal(t, grid.Point{X: 2, Y: 2}, *in.ToggleWall)

	in, _ = app.keyInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, in.Toggle)

	_, quit = app.keyInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.True(t, quit)
	_, quit = app.keyInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, quit)
}

func TestCursorStaysOnGrid(t *testing.T) {
	app, _ := newTestApp(t)
	app.cursor = grid.Point{}

	app.keyInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	app.keyInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, grid.Point{}, app.cursor)

	for i := 0; i < 10; i++ {
		app.keyInput(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
		app.keyInput(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	}
	assert.Equal(t, grid.Point{X: 4, Y: 3}, app.cursor)
}

func TestVimKeysMoveCursor(t *testing.T) {
	tests := []struct {
		key  rune
		want grid.Point
	}{
		{'h', grid.Point{X: 0, Y: 1}},
		{'j', grid.Point{X: 1, Y: 2}},
		{'k', grid.Point{X: 1, Y: 0}},
		{'l', grid.Point{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			app, _ := newTestApp(t)
			app.cursor = grid.Point{X: 1, Y: 1}

			in, quit := app.keyInput(tcell.NewEventKey(tcell.KeyRune, tt.key, tcell.ModNone))
			assert.False(t, quit)
			assert.Equal(t, world.Input{}, in, "movement issues no world command")
			assert.Equal(t, tt.want, app.cursor)
		})
	}
}

func TestCycleLayoutKeepsCursor(t *testing.T) {
	app, _ := newTestApp(t)
	app.cursor = grid.Point{X: 1, Y: 1}

	in, _ := app.keyInput(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	assert.True(t, in.CycleLayout)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, app.cursor)
}

func TestHandleEventEditsAndRuns(t *testing.T) {
	app, _ := newTestApp(t)
	app.cursor = grid.Point{X: 1, Y: 0}

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	c, _ := app.world.Grid.Get(1, 0)
	assert.Equal(t, grid.Wall, c)

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	require.Equal(t, world.Running, app.world.Mode())
	for i := 0; i < 100 && app.world.Mode() == world.Running; i++ {
		app.scheduler.Update(app.world)
	}
	assert.Equal(t, world.Finished, app.world.Mode())
	assert.Contains(t, app.last, "cost 7")

	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestMouseClickDoesNotRepeat(t *testing.T) {
	app, _ := newTestApp(t)

	app.handleEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	c, _ := app.world.Grid.Get(1, 0)
	assert.Equal(t, grid.Wall, c, "held button toggles once")
	assert.Equal(t, grid.Point{X: 1, Y: 0}, app.cursor)

	app.handleEvent(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	c, _ = app.world.Grid.Get(1, 0)
	assert.Equal(t, grid.Empty, c)

	app.handleEvent(tcell.NewEventMouse(30, 8, tcell.ButtonNone, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(30, 8, tcell.Button1, tcell.ModNone))
	assert.Equal(t, grid.Point{X: 1, Y: 0}, app.cursor, "clicks off the grid are ignored")
}

func TestDrawStatusLine(t *testing.T) {
	app, screen := newTestApp(t)
	app.draw()

	assert.Contains(t, rowText(screen, 4), "[BFS]")
	assert.Contains(t, rowText(screen, 5), "q quit")
	assert.Equal(t, "", rowText(screen, 6))
}
