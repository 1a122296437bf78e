package ecs

import (
	"github.com/phanxgames/towerstack"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for towerstack game events.
var GameEventType = events.NewEventType[towerstack.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Game events
// are published to GameEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) towerstack.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event towerstack.Event) {
	GameEventType.Publish(s.world, event)
}
