package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/milk9111/pathviz/cave"
	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/search"
)

// toGraph converts the passable cells of g into an unweighted gonum graph
// keyed by row-major index.
func toGraph(g *grid.Grid) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Passable(x, y) {
				out.AddNode(simple.Node(int64(y*g.Width + x)))
			}
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Passable(x, y) {
				continue
			}
			// right and down only; the graph is undirected
			for _, n := range []grid.Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !g.Passable(n.X, n.Y) {
					continue
				}
				out.SetEdge(simple.Edge{
					F: simple.Node(int64(y*g.Width + x)),
					T: simple.Node(int64(n.Y*g.Width + n.X)),
				})
			}
		}
	}
	return out
}

func TestSearchesMatchGonumDijkstra(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		g := grid.New(40, 25)
		cave.NewGenerator(seed).Generate(g)
		start, end, hasStart, hasEnd := g.FindEndpoints()
		require.True(t, hasStart && hasEnd, "seed %d", seed)

		shortest := path.DijkstraFrom(simple.Node(int64(start.Y*g.Width+start.X)), toGraph(g))
		want := shortest.WeightTo(int64(end.Y*g.Width + end.X))
		require.False(t, math.IsInf(want, 1), "seed %d: cave endpoints must be connected", seed)

		for _, kind := range []search.Kind{search.DijkstraKind, search.AStarKind, search.BFSKind} {
			alg := search.New(kind, start, end)
			search.Run(alg, g, 0)
			require.True(t, alg.FoundPath(), "seed %d %s", seed, kind)
			require.Equal(t, int(want), alg.Cost(), "seed %d %s", seed, kind)
		}
	}
}

func TestDijkstraSettledDistancesMatchGonum(t *testing.T) {
	g := grid.New(30, 30)
	cave.NewGenerator(42).Generate(g)
	start, end, _, _ := g.FindEndpoints()

	d := search.NewDijkstra(start, end)
	search.Run(d, g, 0)
	shortest := path.DijkstraFrom(simple.Node(int64(start.Y*g.Width+start.X)), toGraph(g))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			st := d.State(x, y)
			if st != search.Visited && st != search.Path {
				continue
			}
			got, ok := d.Distance(grid.Point{X: x, Y: y})
			require.True(t, ok)
			want := shortest.WeightTo(int64(y*g.Width + x))
			require.Equal(t, int(want), got, "cell (%d,%d)", x, y)
		}
	}
}
