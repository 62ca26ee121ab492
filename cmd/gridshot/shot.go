package main

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/milk9111/pathviz/palette"
	"github.com/milk9111/pathviz/world"
)

// Render draws the world the way the window does, optionally tracing the
// found path as a line through the cell centers.
func Render(w *world.World, p palette.Palette, v world.Viewport, line bool) image.Image {
	dc := gg.NewContext(w.Grid.Width*v.CellSize, w.Grid.Height*v.CellSize)
	dc.SetColor(p.Background)
	dc.Clear()

	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			left, top, size := v.Rect(x, y)
			dc.SetColor(p.View(w.CellView(x, y)))
			dc.DrawRectangle(left, top, size, size)
			dc.Fill()
		}
	}

	if line {
		drawPathLine(dc, w, p, v)
	}
	return dc.Image()
}

func drawPathLine(dc *gg.Context, w *world.World, p palette.Palette, v world.Viewport) {
	s := w.Search()
	if s == nil || !s.FoundPath() {
		return
	}
	path := s.Path()
	if len(path) < 2 {
		return
	}

	half := float64(v.CellSize) / 2
	dc.SetColor(p.Selected)
	dc.SetLineWidth(max(1, half/2))
	dc.MoveTo(float64(path[0].X*v.CellSize)+half, float64(path[0].Y*v.CellSize)+half)
	for _, pt := range path[1:] {
		dc.LineTo(float64(pt.X*v.CellSize)+half, float64(pt.Y*v.CellSize)+half)
	}
	dc.Stroke()
}
