package world

import (
	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/search"
)

// View is what a renderer should draw for one cell.
type View int

const (
	ViewEmpty View = iota
	ViewWall
	ViewStart
	ViewEnd
	ViewInQueue
	ViewVisited
	ViewPath
)

// CellView resolves the grid cell and the search state of (x, y) into a
// single View. Search states cover the base cell; Start and End always
// stay visible.
func (w *World) CellView(x, y int) View {
	c, _ := w.Grid.Get(x, y)
	switch c {
	case grid.Start:
		return ViewStart
	case grid.End:
		return ViewEnd
	}

	if w.search != nil {
		switch w.search.State(x, y) {
		case search.Path:
			return ViewPath
		case search.Visited:
			return ViewVisited
		case search.InQueue:
			return ViewInQueue
		}
	}

	if c == grid.Wall {
		return ViewWall
	}
	return ViewEmpty
}

// Viewport places the grid on a pixel canvas: CellSize pixels per cell,
// of which the trailing CellGap are left as background.
type Viewport struct {
	CellSize int
	CellGap  int
	OffsetX  int
	OffsetY  int
}

func ViewportFromSpec(spec prefabs.VisualizerSpec) Viewport {
	return Viewport{CellSize: spec.Grid.CellSize, CellGap: spec.Grid.CellGap}
}

// CellAt maps a pixel to the cell under it. ok is false outside the grid.
func (v Viewport) CellAt(px, py int, g *grid.Grid) (grid.Point, bool) {
	if v.CellSize <= 0 || g == nil {
		return grid.Point{}, false
	}
	px -= v.OffsetX
	py -= v.OffsetY
	if px < 0 || py < 0 {
		return grid.Point{}, false
	}
	p := grid.Point{X: px / v.CellSize, Y: py / v.CellSize}
	if !g.InBounds(p.X, p.Y) {
		return grid.Point{}, false
	}
	return p, true
}

// Rect returns the filled square of cell (x, y): its top-left corner and
// side length in pixels.
func (v Viewport) Rect(x, y int) (left, top, size float64) {
	side := v.CellSize - v.CellGap
	if side <= 0 {
		side = v.CellSize
	}
	return float64(v.OffsetX + x*v.CellSize), float64(v.OffsetY + y*v.CellSize), float64(side)
}
