package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/prefabs"
)

func TestViewportCellAt(t *testing.T) {
	g := grid.New(4, 3)
	v := Viewport{CellSize: 20, CellGap: 1, OffsetX: 10}

	tests := []struct {
		name   string
		px, py int
		want   grid.Point
		ok     bool
	}{
		{"origin", 10, 0, grid.Point{}, true},
		{"inside", 45, 25, grid.Point{X: 1, Y: 1}, true},
		{"gap belongs to cell", 29, 19, grid.Point{}, true},
		{"last cell", 89, 59, grid.Point{X: 3, Y: 2}, true},
		{"left of offset", 9, 5, grid.Point{}, false},
		{"right edge", 90, 5, grid.Point{}, false},
		{"status bar", 20, 60, grid.Point{}, false},
		{"negative", -5, -5, grid.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.CellAt(tt.px, tt.py, g)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Viewport{}.CellAt(0, 0, g)
	assert.False(t, ok, "zero cell size")
	_, ok = v.CellAt(10, 0, nil)
	assert.False(t, ok)
}

func TestViewportRect(t *testing.T) {
	v := ViewportFromSpec(prefabs.DefaultVisualizerSpec())
	left, top, size := v.Rect(2, 3)
	assert.Equal(t, 40.0, left)
	assert.Equal(t, 60.0, top)
	assert.Equal(t, 19.0, size)

	left, top, size = Viewport{CellSize: 4, CellGap: 4}.Rect(1, 0)
	assert.Equal(t, []float64{4, 0, 4}, []float64{left, top, size}, "a gap as wide as the cell is ignored")
}
