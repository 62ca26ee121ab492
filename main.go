package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/search"
	"github.com/milk9111/pathviz/world"
)

func main() {
	algo := flag.String("algo", "", "search to start with: dijkstra, astar, bfs or dfs")
	seed := flag.Uint64("seed", 0, "cave seed")
	layoutName := flag.String("layout", "", "layout script in prefabs/scripts/ (basename, .tengo optional)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadVisualizerSpec()
	if err != nil {
		log.Fatal(err)
	}

	cfg := world.ConfigFromSpec(spec)
	cfg.Seed = *seed
	if *algo != "" {
		kind, err := search.ParseKind(*algo)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Algorithm = kind
	}
	if *layoutName != "" {
		cfg.Layout = *layoutName
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(spec.ScreenWidth(), spec.ScreenHeight())
	ebiten.SetWindowTitle(spec.WindowTitle)

	game := NewGame(spec, cfg, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
