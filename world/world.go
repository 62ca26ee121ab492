// Package world holds the visualizer state machine. It knows nothing about
// windows or terminals; front ends translate their input into World calls
// and draw from CellView and Status.
package world

import (
	"fmt"
	"log"

	"github.com/milk9111/pathviz/cave"
	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/layout"
	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/search"
)

// Mode is the top-level app state.
type Mode int

const (
	Editing Mode = iota
	Running
	Paused
	Finished
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	default:
		return "Editing"
	}
}

// Config is the subset of the visualizer spec the world cares about.
type Config struct {
	Width            int
	Height           int
	StepDelay        float64
	MaxStepsPerFrame int
	WallChance       float64
	SmoothingPasses  int
	Algorithm        search.Kind
	Layout           string
	Seed             uint64
}

// ConfigFromSpec maps a prefab spec to a Config. An unknown algorithm name
// falls back to search.DefaultKind.
func ConfigFromSpec(spec prefabs.VisualizerSpec) Config {
	kind, err := search.ParseKind(spec.Algorithm)
	if err != nil && spec.Algorithm != "" {
		log.Printf("world: %v, using %s", err, kind)
	}
	return Config{
		Width:            spec.Grid.Width,
		Height:           spec.Grid.Height,
		StepDelay:        spec.StepDelay,
		MaxStepsPerFrame: spec.MaxStepsPerFrame,
		WallChance:       spec.Cave.WallChance,
		SmoothingPasses:  spec.Cave.SmoothingPasses,
		Algorithm:        kind,
		Layout:           spec.Layout,
	}
}

// World owns the grid, the active search and the app mode.
type World struct {
	Grid *grid.Grid

	cfg     Config
	mode    Mode
	kind    search.Kind
	search  search.Algorithm
	seed    uint64
	layout  string
	layouts *layout.Library
	accum   float64
	events  EventQueue
}

// New builds a world and fills its grid from cfg.Layout, or with a cave
// seeded by cfg.Seed when no layout is set. A layout that fails to load is
// logged and replaced by a cave.
func New(cfg Config) *World {
	if cfg.MaxStepsPerFrame <= 0 {
		cfg.MaxStepsPerFrame = 1
	}
	w := &World{
		Grid:    grid.New(cfg.Width, cfg.Height),
		cfg:     cfg,
		kind:    cfg.Algorithm,
		seed:    cfg.Seed,
		layouts: layout.NewLibrary(),
	}
	if cfg.Layout != "" {
		err := w.ApplyLayout(cfg.Layout)
		if err == nil {
			w.events.Drain()
			return w
		}
		log.Printf("world: %v", err)
	}
	w.generateCave()
	w.events.Drain()
	return w
}

func (w *World) Mode() Mode               { return w.mode }
func (w *World) Algorithm() search.Kind   { return w.kind }
func (w *World) Search() search.Algorithm { return w.search }
func (w *World) Seed() uint64             { return w.seed }
func (w *World) Layout() string           { return w.layout }
func (w *World) Config() Config           { return w.cfg }
func (w *World) Events() *EventQueue      { return &w.events }
func (w *World) Layouts() *layout.Library { return w.layouts }

// SetTiming updates the step pacing, e.g. after a spec reload.
func (w *World) SetTiming(stepDelay float64, maxStepsPerFrame int) {
	if maxStepsPerFrame <= 0 {
		maxStepsPerFrame = 1
	}
	w.cfg.StepDelay = stepDelay
	w.cfg.MaxStepsPerFrame = maxStepsPerFrame
}

// SetCave updates the generator settings used by the next Regenerate.
func (w *World) SetCave(wallChance float64, smoothingPasses int) {
	w.cfg.WallChance = wallChance
	w.cfg.SmoothingPasses = smoothingPasses
}

// ToggleWall flips a wall cell. Any search in progress is discarded.
func (w *World) ToggleWall(p grid.Point) bool {
	if !w.Grid.ToggleWall(p.X, p.Y) {
		return false
	}
	w.clearSearch()
	return true
}

// PlaceEndpoint puts Start on an empty cell, then End once Start exists.
// Clicking an existing endpoint removes it so it can be placed elsewhere.
func (w *World) PlaceEndpoint(p grid.Point) bool {
	c, ok := w.Grid.Get(p.X, p.Y)
	if !ok {
		return false
	}
	_, _, hasStart, hasEnd := w.Grid.FindEndpoints()

	switch {
	case c == grid.Start || c == grid.End:
		w.Grid.Set(p.X, p.Y, grid.Empty)
	case c != grid.Empty:
		return false
	case !hasStart:
		w.Grid.Set(p.X, p.Y, grid.Start)
	case !hasEnd:
		w.Grid.Set(p.X, p.Y, grid.End)
	default:
		return false
	}
	w.clearSearch()
	return true
}

// CycleAlgorithm selects the next search. Only allowed while editing.
func (w *World) CycleAlgorithm() bool {
	return w.SelectAlgorithm(w.kind.Next())
}

func (w *World) SelectAlgorithm(kind search.Kind) bool {
	if w.mode != Editing {
		return false
	}
	if kind == w.kind {
		return true
	}
	w.kind = kind
	w.events.Push(Event{Type: EventAlgorithmChanged, Data: kind})
	return true
}

// Toggle is the run/pause/reset key: it starts a search from Editing,
// pauses and resumes it, and returns to Editing once it has finished.
func (w *World) Toggle() {
	switch w.mode {
	case Editing:
		w.start()
	case Running:
		w.mode = Paused
	case Paused:
		w.mode = Running
	case Finished:
		w.clearSearch()
	}
}

// Complete runs the search to the end in one go, starting it if needed.
func (w *World) Complete() {
	if w.mode == Editing && !w.start() {
		return
	}
	if w.mode != Running && w.mode != Paused {
		return
	}
	search.Run(w.search, w.Grid, 0)
	w.finish()
}

// Advance feeds dt seconds into the step clock and performs every step
// that became due, at most MaxStepsPerFrame. Backlog beyond the cap is
// dropped so a slow frame does not snowball. It returns the step count.
func (w *World) Advance(dt float64) int {
	if w.mode != Running || w.search == nil {
		return 0
	}

	due := w.cfg.MaxStepsPerFrame
	if w.cfg.StepDelay > 0 {
		w.accum += dt
		due = int(w.accum / w.cfg.StepDelay)
		if due > w.cfg.MaxStepsPerFrame {
			due = w.cfg.MaxStepsPerFrame
			w.accum = 0
		} else {
			w.accum -= float64(due) * w.cfg.StepDelay
		}
	}

	steps := 0
	for steps < due {
		steps++
		if !w.search.Step(w.Grid) {
			w.finish()
			break
		}
	}
	return steps
}

// Regenerate advances the seed and builds a fresh cave.
func (w *World) Regenerate() {
	w.seed++
	w.layout = ""
	w.generateCave()
}

// ApplyLayout replaces the grid with a scripted layout. An empty name
// builds a cave with the current seed instead.
func (w *World) ApplyLayout(name string) error {
	name = layout.Name(name)
	if name == "" {
		w.layout = ""
		w.generateCave()
		return nil
	}
	next := grid.New(w.Grid.Width, w.Grid.Height)
	if err := w.layouts.Apply(name, next, w.seed); err != nil {
		return err
	}
	w.Grid = next
	w.layout = name
	w.clearSearch()
	w.events.Push(Event{Type: EventGridRegenerated, Data: name})
	return nil
}

// CycleLayout steps through the cave generator followed by every layout
// script, in name order.
func (w *World) CycleLayout() error {
	names := append([]string{""}, layout.Names()...)
	next := 0
	for i, n := range names {
		if n == w.layout {
			next = (i + 1) % len(names)
			break
		}
	}
	return w.ApplyLayout(names[next])
}

// ClearWalls removes every wall, keeping the endpoints.
func (w *World) ClearWalls() {
	w.Grid.Replace(grid.Wall, grid.Empty)
	w.clearSearch()
}

// Status is the one-line help text for the current mode.
func (w *World) Status() string {
	switch w.mode {
	case Running:
		return "Running... SPACE to pause"
	case Paused:
		return "Paused. SPACE to resume, I to finish"
	case Finished:
		if w.search != nil && w.search.FoundPath() {
			return fmt.Sprintf("Path found! cost %d, %d expanded. SPACE to reset", w.search.Cost(), w.search.Expanded())
		}
		return "No path exists! SPACE to reset"
	}

	source := fmt.Sprintf("Seed: %d", w.seed)
	if w.layout != "" {
		source = "Layout: " + w.layout
	}
	if _, _, hasStart, hasEnd := w.Grid.FindEndpoints(); !hasStart || !hasEnd {
		return source + " | Right click: place start/end"
	}
	return source + " | Tab: switch algorithm | G: new cave | SPACE: pathfind"
}

func (w *World) start() bool {
	start, end, hasStart, hasEnd := w.Grid.FindEndpoints()
	if !hasStart || !hasEnd {
		return false
	}
	w.search = search.New(w.kind, start, end)
	w.mode = Running
	w.accum = 0
	w.events.Push(Event{Type: EventSearchStarted, Data: w.kind})
	return true
}

func (w *World) finish() {
	w.mode = Finished
	w.events.Push(Event{Type: EventSearchFinished, Data: SearchResult{
		Algorithm: w.search.Name(),
		Found:     w.search.FoundPath(),
		Cost:      w.search.Cost(),
		Expanded:  w.search.Expanded(),
	}})
}

func (w *World) clearSearch() {
	had := w.search != nil
	w.search = nil
	w.mode = Editing
	w.accum = 0
	if had {
		w.events.Push(Event{Type: EventSearchCleared})
	}
}

func (w *World) generateCave() {
	gen := cave.Generator{
		WallChance:      w.cfg.WallChance,
		SmoothingPasses: w.cfg.SmoothingPasses,
		Seed:            w.seed,
	}
	gen.Generate(w.Grid)
	w.clearSearch()
	w.events.Push(Event{Type: EventGridRegenerated, Data: w.seed})
}
