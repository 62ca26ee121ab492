// Package search implements step-wise grid searches that expose their
// frontier and visited sets so a renderer can draw every intermediate state.
package search

import (
	"github.com/milk9111/pathviz/grid"
)

// NodeState is the visual state of a cell during a search.
type NodeState uint8

const (
	Unvisited NodeState = iota
	InQueue
	Visited
	Path
)

func (s NodeState) String() string {
	switch s {
	case InQueue:
		return "InQueue"
	case Visited:
		return "Visited"
	case Path:
		return "Path"
	default:
		return "Unvisited"
	}
}

// Algorithm is a search that advances one node expansion per Step.
type Algorithm interface {
	// Step expands one frontier node. It returns true while the search is
	// still running and false once it has finished.
	Step(g *grid.Grid) bool
	State(x, y int) NodeState
	// Path returns the cells from start to end inclusive, or nil when no
	// path has been found.
	Path() []grid.Point
	Finished() bool
	FoundPath() bool
	// Cost is the number of moves along Path, or -1 without a path.
	Cost() int
	// Expanded is the number of distinct nodes visited so far.
	Expanded() int
	Name() string
}

// Run steps alg until it finishes or maxSteps is reached. maxSteps <= 0
// means no limit. It returns the number of steps taken.
func Run(alg Algorithm, g *grid.Grid, maxSteps int) int {
	if alg == nil {
		return 0
	}
	steps := 0
	for !alg.Finished() {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		steps++
		if !alg.Step(g) {
			break
		}
	}
	return steps
}

// trace holds the bookkeeping shared by every search: parent links, node
// states, the visited set and the terminal flags.
type trace struct {
	start    grid.Point
	end      grid.Point
	parents  map[grid.Point]grid.Point
	states   map[grid.Point]NodeState
	visited  map[grid.Point]bool
	finished bool
	found    bool
	expanded int
}

func newTrace(start, end grid.Point) trace {
	return trace{
		start:   start,
		end:     end,
		parents: make(map[grid.Point]grid.Point, 128),
		states:  make(map[grid.Point]NodeState, 256),
		visited: make(map[grid.Point]bool, 256),
	}
}

func (t *trace) State(x, y int) NodeState {
	return t.states[grid.Point{X: x, Y: y}]
}

func (t *trace) Finished() bool  { return t.finished }
func (t *trace) FoundPath() bool { return t.found }
func (t *trace) Expanded() int   { return t.expanded }

func (t *trace) Path() []grid.Point {
	if !t.found {
		return nil
	}
	path := make([]grid.Point, 0, 32)
	cur := t.end
	for cur != t.start {
		path = append(path, cur)
		prev, ok := t.parents[cur]
		if !ok {
			break
		}
		cur = prev
	}
	path = append(path, t.start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (t *trace) Cost() int {
	if !t.found {
		return -1
	}
	return len(t.Path()) - 1
}

// visit marks p as expanded. It returns false if p was already visited.
func (t *trace) visit(p grid.Point) bool {
	if t.visited[p] {
		return false
	}
	t.visited[p] = true
	t.states[p] = Visited
	t.expanded++
	return true
}

func (t *trace) enqueue(p grid.Point) {
	t.states[p] = InQueue
}

// expandable reports whether n may be added to the frontier.
func (t *trace) expandable(g *grid.Grid, n grid.Point) bool {
	return g.Passable(n.X, n.Y) && !t.visited[n]
}

func (t *trace) finish(found bool) {
	t.finished = true
	t.found = found
	if found {
		t.markPath()
	}
}

func (t *trace) markPath() {
	for _, p := range t.Path() {
		t.states[p] = Path
	}
}
