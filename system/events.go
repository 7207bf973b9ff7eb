package system

import "github.com/milk9111/geodash/geom"

// EventKind identifies simulation events.
type EventKind string

const (
	EventLevelLoaded EventKind = "level_loaded"
	EventJumped      EventKind = "jumped"
	EventOrb         EventKind = "orb"
	EventLanded      EventKind = "landed"
	EventGravity     EventKind = "gravity"
	EventCrashed     EventKind = "crashed"
	EventVictory     EventKind = "victory"
	EventDespawned   EventKind = "despawned"
)

// Event records something that happened during a tick. Pos is the player
// position, or the obstacle position for despawns.
type Event struct {
	Kind EventKind
	Tick int
	Pos  geom.Vector
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

// Count tallies events by kind.
func Count(events []Event) map[EventKind]int {
	out := make(map[EventKind]int)
	for _, e := range events {
		out[e.Kind]++
	}
	return out
}
