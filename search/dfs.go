package search

import "github.com/milk9111/pathviz/grid"

// DFS expands the most recently discovered node first. Paths it finds are
// valid but generally not shortest.
type DFS struct {
	trace
	stack []grid.Point
}

func NewDFS(start, end grid.Point) *DFS {
	d := &DFS{
		trace: newTrace(start, end),
		stack: []grid.Point{start},
	}
	d.enqueue(start)
	return d
}

func (d *DFS) Name() string { return DFSKind.String() }

func (d *DFS) Step(g *grid.Grid) bool {
	if d.finished {
		return false
	}
	if len(d.stack) == 0 {
		d.finish(false)
		return false
	}

	last := len(d.stack) - 1
	current := d.stack[last]
	d.stack = d.stack[:last]

	// duplicates are pushed freely and dropped here
	if !d.visit(current) {
		return true
	}

	if current == d.end {
		d.finish(true)
		return false
	}

	for _, n := range g.Neighbors(current.X, current.Y) {
		if !d.expandable(g, n) {
			continue
		}
		if _, ok := d.parents[n]; !ok {
			d.parents[n] = current
		}
		d.stack = append(d.stack, n)
		d.enqueue(n)
	}
	return true
}
