package cave

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathviz/grid"
)

func TestCountWallNeighborsCorner(t *testing.T) {
	g := grid.New(5, 5)
	g.Set(0, 0, grid.Wall)
	// 5 out-of-bounds cells plus the wall itself
	assert.Equal(t, 6, countWallNeighbors(g, 0, 0))
	assert.Equal(t, 1, countWallNeighbors(g, 1, 1))
	assert.Equal(t, 0, countWallNeighbors(g, 2, 2))
}

func TestGenerateDeterministic(t *testing.T) {
	a := grid.New(40, 30)
	b := grid.New(40, 30)
	NewGenerator(7).Generate(a)
	NewGenerator(7).Generate(b)
	assert.Equal(t, a.String(), b.String())

	c := grid.New(40, 30)
	NewGenerator(8).Generate(c)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateProperties(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g := grid.New(50, 50)
		NewGenerator(seed).Generate(g)

		for x := 0; x < g.Width; x++ {
			top, _ := g.Get(x, 0)
			bottom, _ := g.Get(x, g.Height-1)
			require.Equal(t, grid.Wall, top, "seed %d top border", seed)
			require.Equal(t, grid.Wall, bottom, "seed %d bottom border", seed)
		}
		for y := 0; y < g.Height; y++ {
			left, _ := g.Get(0, y)
			right, _ := g.Get(g.Width-1, y)
			require.Equal(t, grid.Wall, left, "seed %d left border", seed)
			require.Equal(t, grid.Wall, right, "seed %d right border", seed)
		}

		regions := Regions(g)
		require.Len(t, regions, 1, "seed %d should leave one open region", seed)

		assert.Equal(t, 1, g.Count(grid.Start), "seed %d", seed)
		assert.Equal(t, 1, g.Count(grid.End), "seed %d", seed)
	}
}

func TestKeepLargestRegion(t *testing.T) {
	g, err := grid.ParseASCII(`
#######
#..#..#
#..#..#
#..####
#######
`)
	require.NoError(t, err)
	require.Len(t, Regions(g), 2)

	KeepLargestRegion(g)
	regions := Regions(g)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 6)
	c, _ := g.Get(4, 1)
	assert.Equal(t, grid.Wall, c)
}

func TestFurthest(t *testing.T) {
	g, err := grid.ParseASCII(`
.....
####.
.....
`)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 0, Y: 2}, Furthest(g, grid.Point{X: 0, Y: 0}))
	assert.Equal(t, grid.Point{X: 0, Y: 0}, Furthest(g, grid.Point{X: 0, Y: 2}))
}

func TestPlaceEndpointsReplacesExisting(t *testing.T) {
	g, err := grid.ParseASCII(`
S....
####.
....E
`)
	require.NoError(t, err)
	PlaceEndpoints(g, rand.New(rand.NewPCG(1, 2)))

	start, end, hasStart, hasEnd := g.FindEndpoints()
	require.True(t, hasStart)
	require.True(t, hasEnd)
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.End))
	// the corridor ends are the only maximal pair
	ends := []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 2}}
	assert.Contains(t, ends, start)
	assert.Contains(t, ends, end)
	assert.NotEqual(t, start, end)
}

func TestPlaceEndpointsNoFloor(t *testing.T) {
	g := grid.New(3, 3)
	g.Fill(grid.Wall)
	PlaceEndpoints(g, rand.New(rand.NewPCG(1, 2)))
	_, _, hasStart, hasEnd := g.FindEndpoints()
	assert.False(t, hasStart)
	assert.False(t, hasEnd)
}

func TestGenerateEmptyGrid(t *testing.T) {
	g := grid.New(0, 0)
	assert.NotPanics(t, func() { NewGenerator(1).Generate(g) })
}
