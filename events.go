package towerstack

import "github.com/google/uuid"

// EventType identifies a semantic game event.
type EventType uint8

const (
	EventStart         EventType = iota // first action; the loop is running
	EventPlaced                         // a layer was clipped and placed
	EventPerfect                        // a layer was placed perfectly
	EventGameOver                       // a layer missed
	EventScore                          // the score changed; see Event.Score
	EventMessage                        // show Event.Message
	EventMessageHidden                  // hide the message with Event.MessageID
)

var eventNames = [...]string{
	EventStart:         "start",
	EventPlaced:        "placed",
	EventPerfect:       "perfect",
	EventGameOver:      "game-over",
	EventScore:         "score",
	EventMessage:       "message",
	EventMessageHidden: "message-hidden",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is emitted by a Game to its EventSink.
type Event struct {
	Type    EventType
	Session uuid.UUID
	Score   int
	// Height is the number of layers above the base, the active one
	// included, when the event fired.
	Height    int
	Message   string
	MessageID uint64
}

// EventSink receives game events. Implementations are called synchronously
// from Game.Action and Game.Frame and must not call back into the Game.
type EventSink interface {
	EmitEvent(Event)
}

// EventFunc adapts a function to EventSink.
type EventFunc func(Event)

// EmitEvent calls f(e).
func (f EventFunc) EmitEvent(e Event) {
	f(e)
}

// MultiSink forwards each event to every sink in order. Nil entries are
// skipped.
type MultiSink []EventSink

// EmitEvent forwards e.
func (m MultiSink) EmitEvent(e Event) {
	for _, s := range m {
		if s != nil {
			s.EmitEvent(e)
		}
	}
}

type nopSink struct{}

func (nopSink) EmitEvent(Event) {}
