package twig

// EventStore receives the events that bubble out of the root component.
// Set one on a Ui with SetEventStore.
type EventStore[E any] interface {
	EmitEvent(event E)
}

// EventFunc adapts a plain function to an EventStore.
type EventFunc[E any] func(event E)

// EmitEvent calls f(event).
func (f EventFunc[E]) EmitEvent(event E) {
	f(event)
}

// MapEvents adapts a subtree whose widgets speak event type From to a parent
// that expects To. Every event the subtree reports is converted with fn. The
// conversion is checked by the compiler when the tree is built, so a
// mismatched event type can never reach a parent at run time.
func MapEvents[From, To any](child RawComponent[From], fn func(From) To) RawComponent[To] {
	if child == nil {
		panic("twig: cannot map events of a nil component")
	}
	if fn == nil {
		panic("twig: nil event conversion")
	}
	return &mapped[From, To]{inner: child, convert: fn}
}

// MapComponent derives c and adapts its events with fn.
func MapComponent[From, To any](c Component[From], fn func(From) To) RawComponent[To] {
	return MapEvents(Derive(c), fn)
}

type mapped[From, To any] struct {
	inner   RawComponent[From]
	convert func(From) To
}

func (m *mapped[From, To]) Render() []Shape {
	return m.inner.Render()
}

func (m *mapped[From, To]) SetMouseStatus(s MouseStatus) []To {
	events := m.inner.SetMouseStatus(s)
	if len(events) == 0 {
		return nil
	}
	out := make([]To, len(events))
	for i, ev := range events {
		out[i] = m.convert(ev)
	}
	return out
}

func (m *mapped[From, To]) HitTest(pos Vec2) bool {
	return m.inner.HitTest(pos)
}

func (m *mapped[From, To]) Width() float64 {
	return m.inner.Width()
}

func (m *mapped[From, To]) Height() float64 {
	return m.inner.Height()
}

func (m *mapped[From, To]) hoverTarget() any {
	return nil
}

func (m *mapped[From, To]) hoverChildren(fn func(child any, offset Vec2)) {
	fn(m.inner, Vec2{})
}
