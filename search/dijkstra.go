package search

import "github.com/milk9111/pathviz/grid"

// Dijkstra is a uniform-cost search with unit edge weights.
type Dijkstra struct {
	trace
	dist  map[grid.Point]int
	queue priorityQueue
}

func NewDijkstra(start, end grid.Point) *Dijkstra {
	d := &Dijkstra{
		trace: newTrace(start, end),
		dist:  map[grid.Point]int{start: 0},
	}
	d.queue.push(start, 0, 0)
	d.enqueue(start)
	return d
}

func (d *Dijkstra) Name() string { return DijkstraKind.String() }

// Distance returns the best known distance to p.
func (d *Dijkstra) Distance(p grid.Point) (int, bool) {
	v, ok := d.dist[p]
	return v, ok
}

func (d *Dijkstra) Step(g *grid.Grid) bool {
	if d.finished {
		return false
	}

	current, ok := d.queue.pop()
	if !ok {
		d.finish(false)
		return false
	}

	pos := current.pos
	// stale entry superseded by a shorter distance
	if !d.visit(pos) {
		return true
	}

	if pos == d.end {
		d.finish(true)
		return false
	}

	currentDist := d.dist[pos]
	for _, n := range g.Neighbors(pos.X, pos.Y) {
		if !d.expandable(g, n) {
			continue
		}
		newDist := currentDist + 1
		if old, seen := d.dist[n]; seen && newDist >= old {
			continue
		}
		d.dist[n] = newDist
		d.parents[n] = pos
		d.queue.push(n, newDist, newDist)
		d.enqueue(n)
	}
	return true
}
