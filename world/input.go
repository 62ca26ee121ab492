package world

import (
	"log"

	"github.com/milk9111/pathviz/grid"
)

// Input is one frame of user intent, filled by a front end.
type Input struct {
	ToggleWall     *grid.Point
	PlaceEndpoint  *grid.Point
	CycleAlgorithm bool
	Toggle         bool
	Complete       bool
	Regenerate     bool
	CycleLayout    bool
	ClearWalls     bool
	Copy           bool
}

// Apply performs the commands in in. Edits go first so that a click and a
// run key in the same frame start a search on the edited grid. Copy
// returns the ASCII snapshot to hand to a clipboard, or "".
func (w *World) Apply(in Input) (copied string) {
	if in.ToggleWall != nil {
		w.ToggleWall(*in.ToggleWall)
	}
	if in.PlaceEndpoint != nil {
		w.PlaceEndpoint(*in.PlaceEndpoint)
	}
	if in.ClearWalls {
		w.ClearWalls()
	}
	if in.Regenerate {
		w.Regenerate()
	}
	if in.CycleLayout {
		if err := w.CycleLayout(); err != nil {
			log.Printf("world: cycle layout: %v", err)
		}
	}
	if in.CycleAlgorithm {
		w.CycleAlgorithm()
	}
	if in.Toggle {
		w.Toggle()
	}
	if in.Complete {
		w.Complete()
	}
	if in.Copy {
		copied = w.ASCII()
	}
	return copied
}

// ASCII renders the grid like grid.String, with path cells drawn as '*'.
func (w *World) ASCII() string {
	if w.search == nil || !w.search.FoundPath() {
		return w.Grid.String()
	}
	snapshot := []rune(w.Grid.String())
	stride := w.Grid.Width + 1
	for _, p := range w.search.Path() {
		if c, _ := w.Grid.Get(p.X, p.Y); c == grid.Start || c == grid.End {
			continue
		}
		snapshot[p.Y*stride+p.X] = '*'
	}
	return string(snapshot)
}
