// Package layout builds grids from tengo scripts shipped in prefabs/scripts.
//
// A script defines wall := func(x, y, w, h) returning whether the cell is
// blocked, and may define start and end as [x, y] arrays. Negative
// coordinates count back from the far edge. The globals width, height and
// seed are available at the top level.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/pathviz/cave"
	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/prefabs"
)

var (
	ErrNoWallFunc  = errors.New("layout: script does not define wall")
	ErrBadCellList = errors.New("layout: script produced an unexpected cell list")
)

// scriptModules are the tengo stdlib modules a layout may import. Layouts
// only compute geometry, so os and times are left out.
var scriptModules = []string{"math", "rand", "text", "fmt", "enum"}

const driverScript = `
__cells := []
for __y := 0; __y < height; __y++ {
	for __x := 0; __x < width; __x++ {
		__cells = append(__cells, bool(wall(__x, __y, width, height)))
	}
}
`

// Names lists the available layout scripts.
func Names() []string {
	return prefabs.ScriptNames()
}

// Library compiles layout scripts on first use and caches them by name.
type Library struct {
	cache map[string]*tengo.Compiled
}

func NewLibrary() *Library {
	return &Library{cache: map[string]*tengo.Compiled{}}
}

// Invalidate drops a cached script so the next Apply recompiles it. An
// empty name clears everything.
func (l *Library) Invalidate(name string) {
	if l == nil {
		return
	}
	if name == "" {
		clear(l.cache)
		return
	}
	delete(l.cache, Name(name))
}

// Apply overwrites g with the named layout. Endpoints the script does not
// supply, or supplies on a wall or out of bounds, are placed the same way
// the cave generator places them.
func (l *Library) Apply(name string, g *grid.Grid, seed uint64) error {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return fmt.Errorf("layout: apply %s: empty grid", name)
	}
	compiled, err := l.compile(name)
	if err != nil {
		return err
	}

	for k, v := range map[string]any{"width": g.Width, "height": g.Height, "seed": int64(seed)} {
		if err := compiled.Set(k, v); err != nil {
			return fmt.Errorf("layout: set %s in %s: %w", k, name, err)
		}
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("layout: run %s: %w", name, err)
	}

	cells := compiled.Get("__cells").Array()
	if len(cells) != g.Width*g.Height {
		return fmt.Errorf("%w: %s gave %d cells for %dx%d", ErrBadCellList, name, len(cells), g.Width, g.Height)
	}
	for i, v := range cells {
		blocked, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%w: %s cell %d is %T", ErrBadCellList, name, i, v)
		}
		c := grid.Empty
		if blocked {
			c = grid.Wall
		}
		g.Set(i%g.Width, i/g.Width, c)
	}

	start, okStart := point(compiled, "start", g)
	end, okEnd := point(compiled, "end", g)
	if okStart && okEnd && start != end {
		g.Set(start.X, start.Y, grid.Start)
		g.Set(end.X, end.Y, grid.End)
		return nil
	}
	cave.PlaceEndpoints(g, cave.NewGenerator(seed).RNG())
	return nil
}

func (l *Library) compile(name string) (*tengo.Compiled, error) {
	key := Name(name)
	if l.cache == nil {
		l.cache = map[string]*tengo.Compiled{}
	}
	if c, ok := l.cache[key]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(key)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", key, err)
	}

	// run the bare script once so a missing wall func gets a clear error
	// instead of an unresolved reference from the driver
	probe, err := newScript(src).Compile()
	if err != nil {
		return nil, fmt.Errorf("layout: compile %s: %w", key, err)
	}
	_ = probe.Set("width", 1)
	_ = probe.Set("height", 1)
	if err := probe.Run(); err != nil {
		return nil, fmt.Errorf("layout: run %s: %w", key, err)
	}
	if !probe.IsDefined("wall") {
		return nil, fmt.Errorf("%w: %s", ErrNoWallFunc, key)
	}

	full := append(append([]byte{}, src...), driverScript...)
	compiled, err := newScript(full).Compile()
	if err != nil {
		return nil, fmt.Errorf("layout: compile %s: %w", key, err)
	}
	l.cache[key] = compiled
	return compiled, nil
}

func newScript(src []byte) *tengo.Script {
	script := tengo.NewScript(src)
	_ = script.Add("width", 0)
	_ = script.Add("height", 0)
	_ = script.Add("seed", 0)
	script.SetImports(stdlib.GetModuleMap(scriptModules...))
	return script
}

// point reads an optional [x, y] global and resolves it against g.
func point(c *tengo.Compiled, name string, g *grid.Grid) (grid.Point, bool) {
	if !c.IsDefined(name) {
		return grid.Point{}, false
	}
	arr := c.Get(name).Array()
	if len(arr) != 2 {
		return grid.Point{}, false
	}
	x, okX := arr[0].(int64)
	y, okY := arr[1].(int64)
	if !okX || !okY {
		return grid.Point{}, false
	}
	p := grid.Point{X: int(x), Y: int(y)}
	if p.X < 0 {
		p.X += g.Width
	}
	if p.Y < 0 {
		p.Y += g.Height
	}
	if !g.Passable(p.X, p.Y) {
		return grid.Point{}, false
	}
	return p, true
}

// Name is the canonical form of a layout name: trimmed, without the
// .tengo extension. It is what Names lists.
func Name(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), ".tengo")
}
