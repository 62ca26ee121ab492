// Package render draws a world onto an ebiten image.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/pathviz/palette"
	"github.com/milk9111/pathviz/world"
)

// DrawGrid fills one square per cell. The gap between squares shows
// whatever screen was cleared to.
func DrawGrid(screen *ebiten.Image, w *world.World, p palette.Palette, v world.Viewport) {
	if screen == nil || w == nil || w.Grid == nil {
		return
	}
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			left, top, size := v.Rect(x, y)
			vector.FillRect(screen, float32(left), float32(top), float32(size), float32(size), p.View(w.CellView(x, y)), false)
		}
	}
}

// DrawBar fills the status bar strip below the grid.
func DrawBar(screen *ebiten.Image, p palette.Palette, top, width, height int) {
	if screen == nil || height <= 0 {
		return
	}
	vector.FillRect(screen, 0, float32(top), float32(width), float32(height), p.Background, false)
}
