package world

// EventType names something that happened to the world during a frame.
type EventType string

const (
	EventSearchStarted    EventType = "search_started"
	EventSearchFinished   EventType = "search_finished"
	EventSearchCleared    EventType = "search_cleared"
	EventGridRegenerated  EventType = "grid_regenerated"
	EventAlgorithmChanged EventType = "algorithm_changed"
	EventSpecReloaded     EventType = "spec_reloaded"
)

// Event is a world event payload.
type Event struct {
	Type EventType
	Data any
}

// SearchResult is the Data of EventSearchFinished.
type SearchResult struct {
	Algorithm string
	Found     bool
	Cost      int
	Expanded  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
