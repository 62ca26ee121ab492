package cave

import (
	"math/rand/v2"

	"github.com/milk9111/pathviz/grid"
)

// Regions returns the 4-connected groups of Empty cells in row-major
// discovery order.
func Regions(g *grid.Grid) [][]grid.Point {
	var regions [][]grid.Point
	seen := make(map[grid.Point]bool, g.Width*g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if seen[p] || !isFloor(g, p) {
				continue
			}
			regions = append(regions, floodFill(g, p, seen))
		}
	}
	return regions
}

func floodFill(g *grid.Grid, from grid.Point, seen map[grid.Point]bool) []grid.Point {
	region := make([]grid.Point, 0, 64)
	queue := []grid.Point{from}
	seen[from] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		region = append(region, p)

		for _, n := range g.Neighbors(p.X, p.Y) {
			if seen[n] || !isFloor(g, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return region
}

// KeepLargestRegion walls off every open region except the biggest one.
// Ties keep the region found first.
func KeepLargestRegion(g *grid.Grid) {
	regions := Regions(g)
	if len(regions) == 0 {
		return
	}
	largest := 0
	for i, r := range regions {
		if len(r) > len(regions[largest]) {
			largest = i
		}
	}
	for i, r := range regions {
		if i == largest {
			continue
		}
		for _, p := range r {
			g.Set(p.X, p.Y, grid.Wall)
		}
	}
}

// Furthest returns the last cell reached by a breadth-first walk over
// floor cells from the given point.
func Furthest(g *grid.Grid, from grid.Point) grid.Point {
	seen := map[grid.Point]bool{from: true}
	queue := []grid.Point{from}
	furthest := from

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		furthest = p

		for _, n := range g.Neighbors(p.X, p.Y) {
			if seen[n] || !isFloor(g, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return furthest
}

// PlaceEndpoints clears existing endpoints and puts Start and End at two
// far-apart floor cells: Start is the furthest cell from a random floor
// cell, End the furthest cell from Start. A single floor cell only gets
// Start; grids with no floor get neither.
func PlaceEndpoints(g *grid.Grid, rng *rand.Rand) {
	g.Replace(grid.Start, grid.Empty)
	g.Replace(grid.End, grid.Empty)

	floor := make([]grid.Point, 0, g.Width*g.Height/2)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c, _ := g.Get(x, y); c == grid.Empty {
				floor = append(floor, grid.Point{X: x, Y: y})
			}
		}
	}
	if len(floor) == 0 {
		return
	}

	seed := floor[rng.IntN(len(floor))]
	far1 := Furthest(g, seed)
	far2 := Furthest(g, far1)

	g.Set(far1.X, far1.Y, grid.Start)
	if far2 != far1 {
		g.Set(far2.X, far2.Y, grid.End)
	}
}

// isFloor reports whether p is an open cell. Start and End count as floor.
func isFloor(g *grid.Grid, p grid.Point) bool {
	c, ok := g.Get(p.X, p.Y)
	return ok && c != grid.Wall
}
