// Package cave generates cave-like grids with cellular automata.
package cave

import (
	"math/rand/v2"

	"github.com/milk9111/pathviz/grid"
)

const (
	DefaultWallChance      = 0.45
	DefaultSmoothingPasses = 1
)

// Generator fills a grid with a seeded cave. Equal seeds on equal grid
// sizes always produce the same cave.
type Generator struct {
	WallChance      float64
	SmoothingPasses int
	Seed            uint64
}

func NewGenerator(seed uint64) Generator {
	return Generator{
		WallChance:      DefaultWallChance,
		SmoothingPasses: DefaultSmoothingPasses,
		Seed:            seed,
	}
}

// Generate overwrites every cell of g. Only the largest open region
// survives, and Start/End are placed at a far-apart pair within it.
func (gen Generator) Generate(g *grid.Grid) {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return
	}
	rng := gen.rng()

	gen.randomFill(g, rng)
	for i := 0; i < gen.SmoothingPasses; i++ {
		smooth(g)
	}
	KeepLargestRegion(g)
	PlaceEndpoints(g, rng)
}

func (gen Generator) rng() *rand.Rand {
	return rand.New(rand.NewPCG(gen.Seed, gen.Seed^0x9e3779b97f4a7c15))
}

// RNG exposes the generator's seeded source for callers that place
// endpoints on grids built some other way.
func (gen Generator) RNG() *rand.Rand {
	return gen.rng()
}

func (gen Generator) randomFill(g *grid.Grid, rng *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			border := x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
			if border || rng.Float64() < gen.WallChance {
				g.Set(x, y, grid.Wall)
			} else {
				g.Set(x, y, grid.Empty)
			}
		}
	}
}

// countWallNeighbors counts walls in the 3x3 window around (x, y), the cell
// itself included. Out-of-bounds cells count as walls.
func countWallNeighbors(g *grid.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c, ok := g.Get(x+dx, y+dy)
			if !ok || c == grid.Wall {
				count++
			}
		}
	}
	return count
}

// smooth updates cells in place, so later cells see earlier results.
func smooth(g *grid.Grid) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := countWallNeighbors(g, x, y)
			if walls >= 5 {
				g.Set(x, y, grid.Wall)
			} else if walls < 4 {
				g.Set(x, y, grid.Empty)
			}
		}
	}
}
