package search

import (
	"container/heap"

	"github.com/milk9111/pathviz/grid"
)

type openItem struct {
	pos   grid.Point
	f     int
	g     int
	seq   int
	index int
}

// openSet is a min-heap on f. Equal f prefers the larger g (the node
// closer to the goal), then insertion order.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	if o[i].g != o[j].g {
		return o[i].g > o[j].g
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*o = old[:n-1]
	return item
}

// priorityQueue wraps openSet with a monotonically increasing sequence so
// that pops are deterministic.
type priorityQueue struct {
	items openSet
	seq   int
}

func (q *priorityQueue) push(p grid.Point, f, g int) {
	q.seq++
	heap.Push(&q.items, &openItem{pos: p, f: f, g: g, seq: q.seq})
}

func (q *priorityQueue) pop() (*openItem, bool) {
	if q.items.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&q.items).(*openItem), true
}
