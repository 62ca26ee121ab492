package system

import (
	"log"

	"github.com/milk9111/pathviz/world"
)

// EventLogSystem drains the world event queue once per frame and logs
// every event. Debug adds the noisier ones.
type EventLogSystem struct {
	Debug bool
	// OnEvent, when set, sees every event after it is logged.
	OnEvent func(world.Event)
}

func NewEventLogSystem(debug bool) *EventLogSystem {
	return &EventLogSystem{Debug: debug}
}

func (s *EventLogSystem) Update(w *world.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.log(evt)
		if s.OnEvent != nil {
			s.OnEvent(evt)
		}
	}
}

func (s *EventLogSystem) log(evt world.Event) {
	switch evt.Type {
	case world.EventSearchFinished:
		if r, ok := evt.Data.(world.SearchResult); ok {
			if r.Found {
				log.Printf("search: %s found a path of cost %d after expanding %d nodes", r.Algorithm, r.Cost, r.Expanded)
			} else {
				log.Printf("search: %s found no path after expanding %d nodes", r.Algorithm, r.Expanded)
			}
		}
	case world.EventSearchStarted, world.EventGridRegenerated, world.EventSpecReloaded:
		log.Printf("world: %s %v", evt.Type, evt.Data)
	default:
		if s.Debug {
			log.Printf("world: %s %v", evt.Type, evt.Data)
		}
	}
}
