package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/pathviz/palette"
	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/render"
	"github.com/milk9111/pathviz/system"
	"github.com/milk9111/pathviz/world"
)

type Game struct {
	debug bool

	world     *world.World
	scheduler *world.Scheduler
	reload    *system.ReloadSystem

	spec     prefabs.VisualizerSpec
	palette  palette.Palette
	viewport world.Viewport

	ui  *ebitenui.UI
	bar *Bar
}

func NewGame(spec prefabs.VisualizerSpec, cfg world.Config, debug bool) *Game {
	g := &Game{
		debug:    debug,
		world:    world.New(cfg),
		spec:     spec,
		palette:  palette.FromSpec(spec.Palette),
		viewport: world.ViewportFromSpec(spec),
	}

	g.ui, g.bar = NewBarUI(g)
	g.reload = system.NewReloadSystem(g.applySpec)

	events := system.NewEventLogSystem(debug)
	events.OnEvent = g.bar.OnEvent

	g.scheduler = world.NewScheduler(
		NewInputSystem(g.viewport, copyToClipboard),
		system.NewStepSystem(ebiten.TPS()),
		g.reload,
		events,
		world.SystemFunc(g.bar.Sync),
	)
	return g
}

func (g *Game) Close() {
	if err := g.reload.Close(); err != nil {
		log.Printf("game: close watcher: %v", err)
	}
}

// applySpec takes a reloaded spec. Grid size and window geometry stay as
// they were at startup.
func (g *Game) applySpec(spec prefabs.VisualizerSpec) {
	g.palette = palette.FromSpec(spec.Palette)
	if spec.WindowTitle != g.spec.WindowTitle {
		ebiten.SetWindowTitle(spec.WindowTitle)
	}
	spec.Grid = g.spec.Grid
	spec.StatusBarHeight = g.spec.StatusBarHeight
	g.spec = spec
}

func (g *Game) Update() error {
	g.ui.Update()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	render.DrawGrid(screen, g.world, g.palette, g.viewport)
	render.DrawBar(screen, g.palette, g.spec.Grid.Height*g.spec.Grid.CellSize, g.spec.ScreenWidth(), g.spec.StatusBarHeight)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.ScreenWidth(), g.spec.ScreenHeight()
}
