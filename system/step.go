package system

import "github.com/milk9111/pathviz/world"

// StepSystem advances the running search by a fixed tick.
type StepSystem struct {
	dt float64
}

// NewStepSystem steps by 1/tps seconds per update.
func NewStepSystem(tps int) *StepSystem {
	if tps <= 0 {
		tps = 60
	}
	return &StepSystem{dt: 1 / float64(tps)}
}

func (s *StepSystem) Update(w *world.World) {
	if s == nil || w == nil {
		return
	}
	w.Advance(s.dt)
}
