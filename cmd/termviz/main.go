// Command termviz runs the visualizer in a terminal using tcell.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/search"
	"github.com/milk9111/pathviz/world"
)

func main() {
	algo := flag.String("algo", "", "search to start with: dijkstra, astar, bfs or dfs")
	seed := flag.Uint64("seed", 0, "cave seed")
	layoutName := flag.String("layout", "", "layout script in prefabs/scripts/")
	width := flag.Int("w", 0, "grid width in cells (default: fit the terminal)")
	height := flag.Int("h", 0, "grid height in cells (default: fit the terminal)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// Load before the log is redirected so startup errors reach stderr.
	spec, cfg, err := loadConfig(*algo, *seed, *layoutName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// The screen owns the terminal; stray log lines would corrupt it.
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cols, rows := screen.Size()
	cfg.Width, cfg.Height = fitGrid(*width, *height, cols, rows)

	app := NewApp(screen, world.New(cfg), spec)
	defer app.Close()
	app.Run()
}

// loadConfig reads the visualizer spec and applies the command-line
// overrides. Grid size is left to the caller, which knows the terminal.
func loadConfig(algo string, seed uint64, layoutName string) (prefabs.VisualizerSpec, world.Config, error) {
	spec, err := prefabs.LoadVisualizerSpec()
	if err != nil {
		return spec, world.Config{}, err
	}
	cfg := world.ConfigFromSpec(spec)
	cfg.Seed = seed
	if algo != "" {
		kind, err := search.ParseKind(algo)
		if err != nil {
			return spec, world.Config{}, err
		}
		cfg.Algorithm = kind
	}
	if layoutName != "" {
		cfg.Layout = layoutName
	}
	return spec, cfg, nil
}
