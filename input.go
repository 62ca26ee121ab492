package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/world"
)

// InputSystem turns this frame's keyboard and mouse state into world
// commands. Clicks outside the grid, such as on the status bar, are
// ignored.
type InputSystem struct {
	viewport world.Viewport
	copyText func(string) error
}

func NewInputSystem(viewport world.Viewport, copyText func(string) error) *InputSystem {
	return &InputSystem{viewport: viewport, copyText: copyText}
}

func (s *InputSystem) Update(w *world.World) {
	in := s.read(w.Grid)
	if text := w.Apply(in); text != "" && s.copyText != nil {
		if err := s.copyText(text); err != nil {
			log.Printf("input: copy grid: %v", err)
			return
		}
		log.Printf("input: copied %dx%d grid to clipboard", w.Grid.Width, w.Grid.Height)
	}
}

func (s *InputSystem) read(g *grid.Grid) world.Input {
	var in world.Input

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p, ok := s.viewport.CellAt(mx, my, g); ok {
			in.ToggleWall = &p
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if p, ok := s.viewport.CellAt(mx, my, g); ok {
			in.PlaceEndpoint = &p
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	in.CycleAlgorithm = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.Toggle = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Complete = inpututil.IsKeyJustPressed(ebiten.KeyI)
	in.Regenerate = inpututil.IsKeyJustPressed(ebiten.KeyG)
	in.CycleLayout = inpututil.IsKeyJustPressed(ebiten.KeyL)
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if ctrl {
			in.Copy = true
		} else {
			in.ClearWalls = true
		}
	}
	return in
}
