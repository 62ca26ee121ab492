// Package palette maps world views to colors for every front end.
package palette

import (
	"image/color"

	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/world"
)

// Palette holds the resolved colors of a visualizer spec.
type Palette struct {
	Background color.Color
	Text       color.Color
	TextDim    color.Color
	Selected   color.Color
	views      [world.ViewPath + 1]color.Color
}

func FromSpec(spec prefabs.PaletteSpec) Palette {
	p := Palette{
		Background: orBlack(spec.Background.Color),
		Text:       orBlack(spec.Text.Color),
		TextDim:    orBlack(spec.TextDim.Color),
		Selected:   orBlack(spec.Selected.Color),
	}
	p.views[world.ViewEmpty] = orBlack(spec.Empty.Color)
	p.views[world.ViewWall] = orBlack(spec.Wall.Color)
	p.views[world.ViewStart] = orBlack(spec.Start.Color)
	p.views[world.ViewEnd] = orBlack(spec.End.Color)
	p.views[world.ViewInQueue] = orBlack(spec.InQueue.Color)
	p.views[world.ViewVisited] = orBlack(spec.Visited.Color)
	p.views[world.ViewPath] = orBlack(spec.Path.Color)
	return p
}

// Default is the palette of prefabs.DefaultVisualizerSpec.
func Default() Palette {
	return FromSpec(prefabs.DefaultVisualizerSpec().Palette)
}

// View returns the fill color for a cell view.
func (p Palette) View(v world.View) color.Color {
	if v < 0 || int(v) >= len(p.views) || p.views[v] == nil {
		return color.Black
	}
	return p.views[v]
}

// RGB returns the 8-bit channels of c, ignoring alpha.
func RGB(c color.Color) (r, g, b uint8) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return nc.R, nc.G, nc.B
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
