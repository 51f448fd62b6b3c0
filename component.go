package twig

// RawComponent is the capability set every node of the tree provides. Widget
// authors normally implement Component and let Derive produce the
// RawComponent; leaf widgets that draw shapes themselves implement it directly.
//
// All methods work in the component's local space: the origin is the
// component's bottom-left corner. Within one Ui update Render, HitTest and
// SetMouseStatus must agree on the same extents.
type RawComponent[E any] interface {
	// Render returns the look of the component. Repeated calls without an
	// intervening mutation return equivalent shapes.
	Render() []Shape

	// SetMouseStatus tells the component where the pointer is and whether
	// the button is down. It returns the events the component wants its
	// parent to see, already expressed in the tree's event type.
	SetMouseStatus(m MouseStatus) []E

	// HitTest reports whether pos touches the component.
	HitTest(pos Vec2) bool

	// Width returns the natural width used by box layouts.
	Width() float64

	// Height returns the natural height used by box layouts.
	Height() float64
}

// Component is the contract widget authors implement. Layout is called once
// per traversal and must build a fresh Layout each time; the returned value
// points at children owned by the component and is not kept.
//
// A Component may additionally implement ChildEventHandler, HoverListener,
// Dimensioner and BoundingBoxer. Each one that is missing falls back to the
// behavior documented on it.
type Component[E any] interface {
	Layout() Layout[E]
}

// ChildEventHandler receives the events bubbled up by a component's children,
// once per event, in child order. Returning ok=false absorbs the event;
// otherwise the returned event is passed on to the component's own parent.
// Components without a handler absorb every child event.
type ChildEventHandler[E any] interface {
	HandleChildEvent(childID int, event E) (out E, ok bool)
}

// HoverListener is notified of the component's hover status after every Ui
// update. Components without it are not notified.
type HoverListener interface {
	SetHoveredStatus(status HoveredStatus)
}

// Dimensioner overrides the size computed from the layout. Returning
// ok=false keeps the computed size.
type Dimensioner interface {
	Dimensions() (size Vec2, ok bool)
}

// BoundingBoxer overrides the interactive area computed from the layout. The
// box is in local space. Returning ok=false keeps the computed area.
type BoundingBoxer interface {
	BoundingBox() (box Rect, ok bool)
}

// Derive returns the RawComponent obtained by interpreting c's layout. If c
// already implements RawComponent it is returned as is.
//
// The result holds c by reference: mutations of the widget are visible on
// the next traversal without deriving again.
func Derive[E any](c Component[E]) RawComponent[E] {
	if c == nil {
		panic("twig: cannot derive a nil component")
	}
	if raw, ok := c.(RawComponent[E]); ok {
		return raw
	}
	return &derived[E]{c: c}
}

// derived is the RawComponent produced by Derive.
type derived[E any] struct {
	c Component[E]
}

func (d *derived[E]) Render() []Shape {
	return d.c.Layout().render()
}

func (d *derived[E]) SetMouseStatus(m MouseStatus) []E {
	tagged := d.c.Layout().dispatch(m)
	if len(tagged) == 0 {
		return nil
	}
	h, ok := d.c.(ChildEventHandler[E])
	if !ok {
		return nil
	}
	var out []E
	for _, t := range tagged {
		if ev, keep := h.HandleChildEvent(t.childID, t.event); keep {
			out = append(out, ev)
		}
	}
	return out
}

func (d *derived[E]) HitTest(pos Vec2) bool {
	if bb, ok := d.c.(BoundingBoxer); ok {
		if box, ok := bb.BoundingBox(); ok {
			return box.Contains(pos)
		}
	}
	if dim, ok := d.c.(Dimensioner); ok {
		if size, ok := dim.Dimensions(); ok {
			return RectFromSize(size).Contains(pos)
		}
	}
	return d.c.Layout().hitTest(pos)
}

func (d *derived[E]) Width() float64 {
	if dim, ok := d.c.(Dimensioner); ok {
		if size, ok := dim.Dimensions(); ok {
			return size.X
		}
	}
	return d.c.Layout().width()
}

func (d *derived[E]) Height() float64 {
	if dim, ok := d.c.(Dimensioner); ok {
		if size, ok := dim.Dimensions(); ok {
			return size.Y
		}
	}
	return d.c.Layout().height()
}

// hoverTarget and hoverChildren expose the widget and its placed children to
// the hover pass, which does not know E.
func (d *derived[E]) hoverTarget() any {
	return d.c
}

func (d *derived[E]) hoverChildren(fn func(child any, offset Vec2)) {
	d.c.Layout().each(func(_ int, child RawComponent[E], offset Vec2) bool {
		fn(child, offset)
		return true
	})
}
