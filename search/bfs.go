package search

import "github.com/milk9111/pathviz/grid"

// BFS expands nodes in discovery order. On a unit-cost grid it finds
// shortest paths.
type BFS struct {
	trace
	queue []grid.Point
}

func NewBFS(start, end grid.Point) *BFS {
	b := &BFS{
		trace: newTrace(start, end),
		queue: []grid.Point{start},
	}
	b.enqueue(start)
	return b
}

func (b *BFS) Name() string { return BFSKind.String() }

func (b *BFS) Step(g *grid.Grid) bool {
	if b.finished {
		return false
	}
	if len(b.queue) == 0 {
		b.finish(false)
		return false
	}

	current := b.queue[0]
	b.queue = b.queue[1:]

	if !b.visit(current) {
		return true
	}

	if current == b.end {
		b.finish(true)
		return false
	}

	for _, n := range g.Neighbors(current.X, current.Y) {
		if !b.expandable(g, n) {
			continue
		}
		if b.states[n] == InQueue {
			continue
		}
		b.parents[n] = current
		b.queue = append(b.queue, n)
		b.enqueue(n)
	}
	return true
}
