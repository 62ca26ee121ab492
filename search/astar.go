package search

import "github.com/milk9111/pathviz/grid"

// AStar is Dijkstra guided by the Manhattan distance to the goal.
type AStar struct {
	trace
	gCost map[grid.Point]int
	queue priorityQueue
}

func NewAStar(start, end grid.Point) *AStar {
	a := &AStar{
		trace: newTrace(start, end),
		gCost: map[grid.Point]int{start: 0},
	}
	a.queue.push(start, manhattan(start, end), 0)
	a.enqueue(start)
	return a
}

func (a *AStar) Name() string { return AStarKind.String() }

func (a *AStar) Step(g *grid.Grid) bool {
	if a.finished {
		return false
	}

	current, ok := a.queue.pop()
	if !ok {
		a.finish(false)
		return false
	}

	pos := current.pos
	if !a.visit(pos) {
		return true
	}

	if pos == a.end {
		a.finish(true)
		return false
	}

	currentG := a.gCost[pos]
	for _, n := range g.Neighbors(pos.X, pos.Y) {
		if !a.expandable(g, n) {
			continue
		}
		newG := currentG + 1
		if old, seen := a.gCost[n]; seen && newG >= old {
			continue
		}
		a.gCost[n] = newG
		a.parents[n] = pos
		a.queue.push(n, newG+manhattan(n, a.end), newG)
		a.enqueue(n)
	}
	return true
}

func manhattan(a, b grid.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
