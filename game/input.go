package game

import "sync"

// EventKind identifies an input event
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventFire
	EventRestart
)

// Event is a single input event; Dir is only meaningful for press/release
type Event struct {
	Kind EventKind
	Dir  Direction
}

// Input queues events from the input collaborator until the next tick drains
// them. It is safe to record events from another goroutine.
type Input struct {
	mu     sync.Mutex
	events []Event
}

// NewInput creates an empty input queue
func NewInput() *Input {
	return &Input{events: make([]Event, 0, 8)}
}

// Press records a movement key going down
func (in *Input) Press(dir Direction) {
	in.push(Event{Kind: EventPress, Dir: dir})
}

// Release records a movement key going up
func (in *Input) Release(dir Direction) {
	in.push(Event{Kind: EventRelease, Dir: dir})
}

// Fire records a fire trigger
func (in *Input) Fire() {
	in.push(Event{Kind: EventFire})
}

// Restart records a restart trigger
func (in *Input) Restart() {
	in.push(Event{Kind: EventRestart})
}

// Drain returns the queued events in arrival order and empties the queue
func (in *Input) Drain() []Event {
	in.mu.Lock()
	defer in.mu.Unlock()

	if len(in.events) == 0 {
		return nil
	}
	out := make([]Event, len(in.events))
	copy(out, in.events)
	in.events = in.events[:0]
	return out
}

func (in *Input) push(e Event) {
	in.mu.Lock()
	in.events = append(in.events, e)
	in.mu.Unlock()
}
