// Package twig is a retained-mode UI component toolkit that renders to a flat
// list of shapes.
//
// Twig owns no window and draws nothing itself. An application builds a tree
// of components, feeds the pointer position, button state and viewport size
// into a [Ui], and reads back the shapes of the current frame with
// [Ui.Draw]. A rendering backend turns the shapes into pixels; the
// ebitenui subpackage is one for [Ebitengine].
//
// # Quick start
//
//	ui := twig.New[MyEvent](root, twig.Size{Width: 800, Height: 600})
//	ui.SetMousePosition(460, 285, true)
//	ui.SetMousePressed(true)
//	ui.SetMousePressed(false)
//	for _, s := range ui.Draw() {
//		// draw s
//	}
//
// Every input method recomputes the frame before returning. To change the
// root component, go through [Ui.Mutate] or [Ui.MainComponent] so several
// mutations cost a single recompute:
//
//	ui.Mutate(func(c *Counter) { c.SetNumber(3) })
//
// # Coordinates
//
// Shapes and pointer positions live in a logical space where the viewport
// spans -1..1 on both axes, y pointing up. Each component works in its own
// local space whose origin is its bottom-left corner; layouts translate
// children into their parent's space.
//
// # Components
//
// Leaf widgets implement [RawComponent] directly: they render shapes, answer
// hit tests, report their size and turn pointer updates into events.
// Containers implement [Component] and describe their children with a
// [Layout]: [SingleChild], [HorizontalBox], [VerticalBox] or
// [PositionedChildren]. [Derive] interprets the layout. Optional interfaces
// refine the derived behavior: [ChildEventHandler], [HoverListener],
// [Dimensioner] and [BoundingBoxer].
//
// # Events
//
// A tree speaks a single event type E. Widgets bubble events to their parent,
// which handles them or passes them on; whatever leaves the root is returned
// by [Ui.Events] and sent to the [EventStore], if any. Subtrees written for a
// different event type are adapted with [MapEvents].
//
// The widget subpackage provides Text, Button and Input. The ecs module
// bridges root events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package twig
