package sketch

// EventKind identifies what an Event carries.
type EventKind uint8

const (
	EventPointerDown EventKind = iota + 1
	EventPointerMove
	EventPointerUp
	EventCommand
	EventResize
)

// Command is a keyboard or control bar action.
type Command uint8

const (
	CommandNone Command = iota
	CommandClear
	CommandPiano
	CommandViolin
	CommandGuitar
	CommandReplay
)

// Event is one input for the app. Pointer events use X and Y; resize events
// use them as the new width and height.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Command Command
}

func PointerDown(x, y float64) Event { return Event{Kind: EventPointerDown, X: x, Y: y} }
func PointerMove(x, y float64) Event { return Event{Kind: EventPointerMove, X: x, Y: y} }
func PointerUp(x, y float64) Event   { return Event{Kind: EventPointerUp, X: x, Y: y} }
func Key(c Command) Event            { return Event{Kind: EventCommand, Command: c} }
func Resize(w, h float64) Event      { return Event{Kind: EventResize, X: w, Y: h} }

// Queue is a FIFO of events waiting for dispatch.
type Queue struct {
	events []Event
	spare  []Event
}

// Push appends ev.
func (q *Queue) Push(ev Event) { q.events = append(q.events, ev) }

// Drain hands every waiting event to fn in order. Events pushed by fn wait
// for the next Drain.
func (q *Queue) Drain(fn func(Event)) {
	batch := q.events
	q.events = q.spare[:0]
	for _, ev := range batch {
		fn(ev)
	}
	q.spare = batch[:0]
}
