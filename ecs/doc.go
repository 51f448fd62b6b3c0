// Package ecs bridges twig UI events into an ECS world.
//
// [NewDonburiStore] returns a twig.EventStore that publishes every event the
// root component reports to a [Donburi] event type. ECS systems subscribe to
// that type and drain it with ProcessEvents, so UI clicks are handled in the
// same place as the rest of the game logic.
//
// Usage:
//
//	var UIEvents = events.NewEventType[MyEvent]()
//
//	ui.SetEventStore(ecs.NewDonburiStore(world, UIEvents))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
