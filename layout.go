package twig

import "math"

// LayoutKind distinguishes how a Layout arranges its children.
type LayoutKind uint8

const (
	LayoutSingleChild LayoutKind = iota // one child, same size as the parent
	LayoutHorizontalBox                 // children left to right, x advances by width
	LayoutVerticalBox                   // children stacked along +y, y advances by height
	LayoutPositioned                    // every child at its own fixed offset
)

// String returns the name of the kind.
func (k LayoutKind) String() string {
	switch k {
	case LayoutSingleChild:
		return "SingleChild"
	case LayoutHorizontalBox:
		return "HorizontalBox"
	case LayoutVerticalBox:
		return "VerticalBox"
	case LayoutPositioned:
		return "PositionedChildren"
	default:
		return "unknown"
	}
}

// PositionedChild is a child placed at a fixed offset from its parent's
// origin, independent of its siblings' sizes.
type PositionedChild[E any] struct {
	Child RawComponent[E]
	X, Y  float64
}

// Layout describes a component's children for one traversal. Build it with
// SingleChild, HorizontalBox, VerticalBox or PositionedChildren. The zero
// value has no children.
type Layout[E any] struct {
	kind     LayoutKind
	children []PositionedChild[E] // X and Y are only used by LayoutPositioned
}

// SingleChild returns a layout with exactly one child of the same size as
// the parent.
func SingleChild[E any](child RawComponent[E]) Layout[E] {
	return Layout[E]{kind: LayoutSingleChild, children: wrapChildren([]RawComponent[E]{child})}
}

// HorizontalBox returns a layout placing children left to right.
func HorizontalBox[E any](children ...RawComponent[E]) Layout[E] {
	return Layout[E]{kind: LayoutHorizontalBox, children: wrapChildren(children)}
}

// VerticalBox returns a layout stacking children along the y axis, the first
// child at the parent's origin.
func VerticalBox[E any](children ...RawComponent[E]) Layout[E] {
	return Layout[E]{kind: LayoutVerticalBox, children: wrapChildren(children)}
}

// PositionedChildren returns a layout placing every child at its own offset.
// Positioned children do not contribute to the parent's size.
func PositionedChildren[E any](children ...PositionedChild[E]) Layout[E] {
	for _, c := range children {
		if c.Child == nil {
			panic("twig: layout child is nil")
		}
	}
	return Layout[E]{kind: LayoutPositioned, children: children}
}

func wrapChildren[E any](children []RawComponent[E]) []PositionedChild[E] {
	out := make([]PositionedChild[E], len(children))
	for i, c := range children {
		if c == nil {
			panic("twig: layout child is nil")
		}
		out[i].Child = c
	}
	return out
}

// Kind returns how the layout arranges its children.
func (l Layout[E]) Kind() LayoutKind {
	return l.kind
}

// Len returns the number of children.
func (l Layout[E]) Len() int {
	return len(l.children)
}

// Child returns the child at index i, which is also its child ID.
func (l Layout[E]) Child(i int) RawComponent[E] {
	return l.children[i].Child
}

// each calls fn for every child in layout order with the child's offset from
// the parent's origin. Box offsets accumulate the sizes of the preceding
// siblings, read before fn runs so a child resizing itself in fn does not
// move its siblings in this traversal. The walk stops early when fn returns
// false.
func (l Layout[E]) each(fn func(childID int, child RawComponent[E], offset Vec2) bool) {
	var running Vec2
	for i, pc := range l.children {
		offset := running
		switch l.kind {
		case LayoutPositioned:
			offset = Vec2{pc.X, pc.Y}
		case LayoutHorizontalBox:
			running.X += pc.Child.Width()
		case LayoutVerticalBox:
			running.Y += pc.Child.Height()
		}
		if !fn(i, pc.Child, offset) {
			return
		}
	}
}

// render concatenates the children's shapes translated to the parent's space.
func (l Layout[E]) render() []Shape {
	var out []Shape
	l.each(func(_ int, child RawComponent[E], offset Vec2) bool {
		out = translateAll(out, child.Render(), offset)
		return true
	})
	return out
}

// childEvent is an event reported by a child, tagged with its position.
type childEvent[E any] struct {
	childID int
	event   E
}

// dispatch forwards m to every child and collects their events in traversal
// order. A single child gets m unchanged. Otherwise only the first child whose
// HitTest accepts the translated position sees the pointer; every other child
// is told the pointer is away. Pressed reaches every child.
func (l Layout[E]) dispatch(m MouseStatus) []childEvent[E] {
	var out []childEvent[E]
	collect := func(id int, events []E) {
		for _, ev := range events {
			out = append(out, childEvent[E]{childID: id, event: ev})
		}
	}

	if l.kind == LayoutSingleChild {
		for i, pc := range l.children {
			collect(i, pc.Child.SetMouseStatus(m))
		}
		return out
	}

	found := false
	l.each(func(id int, child RawComponent[E], offset Vec2) bool {
		status := Away(m.Pressed)
		if m.Over && !found {
			local := m.Position.Sub(offset)
			if child.HitTest(local) {
				status = At(local, m.Pressed)
				found = true
			}
		}
		collect(id, child.SetMouseStatus(status))
		return true
	})
	return out
}

// hitTest reports whether pos touches any child, stopping at the first one.
func (l Layout[E]) hitTest(pos Vec2) bool {
	hit := false
	l.each(func(_ int, child RawComponent[E], offset Vec2) bool {
		hit = child.HitTest(pos.Sub(offset))
		return !hit
	})
	return hit
}

func (l Layout[E]) width() float64 {
	switch l.kind {
	case LayoutSingleChild:
		if len(l.children) == 0 {
			return 0
		}
		return l.children[0].Child.Width()
	case LayoutHorizontalBox:
		var sum float64
		for _, pc := range l.children {
			sum += pc.Child.Width()
		}
		return sum
	case LayoutVerticalBox:
		var widest float64
		for _, pc := range l.children {
			widest = math.Max(widest, pc.Child.Width())
		}
		return widest
	default:
		return 0
	}
}

func (l Layout[E]) height() float64 {
	switch l.kind {
	case LayoutSingleChild:
		if len(l.children) == 0 {
			return 0
		}
		return l.children[0].Child.Height()
	case LayoutHorizontalBox:
		var tallest float64
		for _, pc := range l.children {
			tallest = math.Max(tallest, pc.Child.Height())
		}
		return tallest
	case LayoutVerticalBox:
		var sum float64
		for _, pc := range l.children {
			sum += pc.Child.Height()
		}
		return sum
	default:
		return 0
	}
}
