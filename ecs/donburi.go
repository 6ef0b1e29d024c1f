// Package ecs provides ECS adapters for hyperspace.
package ecs

import (
	"github.com/phanxgames/hyperspace"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RevealEventType is the Donburi event type for starfield reveals.
var RevealEventType = events.NewEventType[hyperspace.RevealEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a RevealSink backed by a Donburi world.
// Reveals are published to RevealEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) hyperspace.RevealSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Revealed(event hyperspace.RevealEvent) {
	RevealEventType.Publish(s.world, event)
}
