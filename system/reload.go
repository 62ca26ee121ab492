package system

import (
	"log"

	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/world"
)

// ReloadSystem applies prefab and script edits picked up by a watcher.
// Grid dimensions are fixed for the window's lifetime, so a changed size
// only takes effect on restart.
type ReloadSystem struct {
	watcher *prefabs.Watcher
	load    func() (prefabs.VisualizerSpec, error)
	onSpec  func(prefabs.VisualizerSpec)
}

// NewReloadSystem starts watching the prefab directories. When watching
// is not possible (missing directory, wasm) the error is logged and the
// returned system does nothing.
func NewReloadSystem(onSpec func(prefabs.VisualizerSpec)) *ReloadSystem {
	w, err := prefabs.NewWatcher()
	if err != nil {
		log.Printf("reload: hot reload disabled: %v", err)
	}
	return &ReloadSystem{watcher: w, load: prefabs.LoadVisualizerSpec, onSpec: onSpec}
}

func (r *ReloadSystem) Close() error {
	if r == nil {
		return nil
	}
	return r.watcher.Close()
}

func (r *ReloadSystem) Update(w *world.World) {
	if r == nil || r.watcher == nil || w == nil {
		return
	}
	changes, err := r.watcher.Poll()
	if err != nil {
		log.Printf("reload: watch: %v", err)
	}
	r.apply(w, changes)
}

func (r *ReloadSystem) apply(w *world.World, changes []prefabs.Change) {
	for _, c := range changes {
		switch c.Kind {
		case prefabs.ScriptChange:
			w.Layouts().Invalidate("")
			log.Printf("reload: script %s changed", c.Path)
			if w.Layout() != "" && w.Mode() == world.Editing {
				if err := w.ApplyLayout(w.Layout()); err != nil {
					log.Printf("reload: %v", err)
				}
			}
		case prefabs.SpecChange:
			spec, err := r.load()
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			cfg := w.Config()
			if spec.Grid.Width != cfg.Width || spec.Grid.Height != cfg.Height {
				log.Printf("reload: grid size %dx%d applies after restart", spec.Grid.Width, spec.Grid.Height)
			}
			w.SetTiming(spec.StepDelay, spec.MaxStepsPerFrame)
			w.SetCave(spec.Cave.WallChance, spec.Cave.SmoothingPasses)
			if r.onSpec != nil {
				r.onSpec(spec)
			}
			w.Events().Push(world.Event{Type: world.EventSpecReloaded, Data: c.Path})
		}
	}
}
