package ecs

import (
	"github.com/phanxgames/twig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type donburiStore[E any] struct {
	world     donburi.World
	eventType *events.EventType[E]
}

// NewDonburiStore creates an EventStore that publishes UI events to
// eventType in world. Events are queued; consume them with
// eventType.ProcessEvents or events.ProcessAllEvents.
func NewDonburiStore[E any](world donburi.World, eventType *events.EventType[E]) twig.EventStore[E] {
	if eventType == nil {
		panic("ecs: nil event type")
	}
	return &donburiStore[E]{world: world, eventType: eventType}
}

func (s *donburiStore[E]) EmitEvent(event E) {
	s.eventType.Publish(s.world, event)
}
