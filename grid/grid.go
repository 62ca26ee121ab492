package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRaggedRows  = errors.New("grid: rows have different lengths")
	ErrUnknownCell = errors.New("grid: unknown cell rune")
)

// Cell is the content of a single grid square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Start
	End
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// Rune returns the ASCII form used by String and ParseASCII.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a row-major 2D array of cells.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// New returns a width x height grid of Empty cells. Non-positive
// dimensions yield an empty 0x0 grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return g != nil && x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Get returns the cell at (x, y). ok is false outside the grid.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	return g.cells[y*g.Width+x], true
}

// Set writes c at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = c
}

// Passable reports whether (x, y) is inside the grid and not a wall.
func (g *Grid) Passable(x, y int) bool {
	c, ok := g.Get(x, y)
	return ok && c != Wall
}

// Neighbors returns the in-bounds 4-way neighbors of (x, y) in the order
// left, right, up, down. Walls are included; callers filter.
func (g *Grid) Neighbors(x, y int) []Point {
	out := make([]Point, 0, 4)
	if !g.InBounds(x, y) {
		return out
	}
	if x > 0 {
		out = append(out, Point{X: x - 1, Y: y})
	}
	if x < g.Width-1 {
		out = append(out, Point{X: x + 1, Y: y})
	}
	if y > 0 {
		out = append(out, Point{X: x, Y: y - 1})
	}
	if y < g.Height-1 {
		out = append(out, Point{X: x, Y: y + 1})
	}
	return out
}

// ToggleWall flips Empty and Wall. Start and End cells are left alone.
func (g *Grid) ToggleWall(x, y int) bool {
	c, ok := g.Get(x, y)
	if !ok {
		return false
	}
	switch c {
	case Empty:
		g.Set(x, y, Wall)
	case Wall:
		g.Set(x, y, Empty)
	default:
		return false
	}
	return true
}

// FindEndpoints scans for the Start and End cells. When several exist the
// last one in row-major order wins.
func (g *Grid) FindEndpoints() (start, end Point, hasStart, hasEnd bool) {
	if g == nil {
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.cells[y*g.Width+x] {
			case Start:
				start, hasStart = Point{X: x, Y: y}, true
			case End:
				end, hasEnd = Point{X: x, Y: y}, true
			}
		}
	}
	return
}

func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Replace rewrites every cell equal to from.
func (g *Grid) Replace(from, to Cell) {
	for i, c := range g.cells {
		if c == from {
			g.cells[i] = to
		}
	}
}

func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// String renders the grid one row per line using Cell.Rune.
func (g *Grid) String() string {
	if g == nil || g.Width == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.cells[y*g.Width+x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseASCII builds a grid from rows of '#', '.', 'S' and 'E'. Blank lines
// and surrounding whitespace are ignored.
func ParseASCII(s string) (*Grid, error) {
	rows := make([]string, 0, 16)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return New(0, 0), nil
	}

	width := len([]rune(rows[0]))
	g := New(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("grid: parse row %d: %w", y, ErrRaggedRows)
		}
		for x, r := range runes {
			var c Cell
			switch r {
			case '.':
				c = Empty
			case '#':
				c = Wall
			case 'S':
				c = Start
			case 'E':
				c = End
			default:
				return nil, fmt.Errorf("grid: parse %q at (%d,%d): %w", r, x, y, ErrUnknownCell)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}
