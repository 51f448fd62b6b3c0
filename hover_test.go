package twig

import "testing"

func TestHoverSiblings(t *testing.T) {
	a, b := newLeaf("a", 0.1, 0.1), newLeaf("b", 0.1, 0.1)
	root := hbox(a, b)

	hoverChain(Derive[string](root), Vec2{0.15, 0.05})
	if a.hover != NotHovered || b.hover != Hovered || root.hover != ChildHovered {
		t.Errorf("a=%v b=%v root=%v, want NotHovered Hovered ChildHovered", a.hover, b.hover, root.hover)
	}

	hoverChain(Derive[string](root), Vec2{0.5, 0.5})
	if a.hover != NotHovered || b.hover != NotHovered || root.hover != NotHovered {
		t.Errorf("a=%v b=%v root=%v, want all NotHovered", a.hover, b.hover, root.hover)
	}
}

func TestHoverNested(t *testing.T) {
	a := newLeaf("a", 0.1, 0.1)
	inner := single(a)
	root := hbox(newLeaf("pad", 0.1, 0.1), Derive[string](inner))

	_, chain := hoverChain(Derive[string](root), Vec2{0.15, 0.05})
	if len(chain) != 3 {
		t.Errorf("chain length = %d, want 3", len(chain))
	}
	if a.hover != Hovered || inner.hover != ChildHovered || root.hover != ChildHovered {
		t.Errorf("a=%v inner=%v root=%v", a.hover, inner.hover, root.hover)
	}
}

func TestHoverEveryVisitedListenerNotified(t *testing.T) {
	a, b, c := newLeaf("a", 1, 1), newLeaf("b", 1, 1), newLeaf("c", 1, 1)
	root := hbox(a, b, c)
	pass, _ := hoverChain(Derive[string](root), Vec2{10, 10})
	if len(pass.visited) != 4 {
		t.Errorf("visited = %d, want 4", len(pass.visited))
	}
	for _, l := range []*leaf{a, b, c} {
		if l.hoverN != 1 {
			t.Errorf("%s notified %d times, want 1", l.name, l.hoverN)
		}
	}
}

func TestHoverOverlapFirstSiblingWins(t *testing.T) {
	a, b := newLeaf("a", 1, 1), newLeaf("b", 1, 1)
	root := &box{kind: LayoutPositioned, children: []RawComponent[string]{a, b}, positions: []Vec2{{}, {}}}
	hoverChain(Derive[string](root), Vec2{0.5, 0.5})
	if a.hover != Hovered || b.hover != NotHovered {
		t.Errorf("a=%v b=%v, want Hovered NotHovered", a.hover, b.hover)
	}
}

func TestHoverBoundingBox(t *testing.T) {
	a := newLeaf("a", 0.1, 0.1)
	w := &bounded{box: single(a), rect: Rect{Max: Vec2{0.05, 0.05}}}
	root := vbox(Derive[string](w))

	t.Run("inside box and child", func(t *testing.T) {
		hoverChain(Derive[string](root), Vec2{0.02, 0.02})
		if a.hover != Hovered || w.hover != ChildHovered || root.hover != ChildHovered {
			t.Errorf("a=%v w=%v root=%v", a.hover, w.hover, root.hover)
		}
	})

	t.Run("child outside box", func(t *testing.T) {
		// The leaf accepts the pointer but its parent's box does not: the
		// whole subtree reports nothing.
		hoverChain(Derive[string](root), Vec2{0.08, 0.08})
		if a.hover != NotHovered || w.hover != NotHovered || root.hover != NotHovered {
			t.Errorf("a=%v w=%v root=%v, want all NotHovered", a.hover, w.hover, root.hover)
		}
	})
}

func TestHoverBoundingBoxWithoutHoveredChild(t *testing.T) {
	a := newLeaf("a", 0.1, 0.1)
	w := &bounded{box: single(a), rect: Rect{Max: Vec2{1, 1}}}
	root := single(Derive[string](w))

	hoverChain(Derive[string](root), Vec2{0.5, 0.5})
	if w.hover != Hovered || a.hover != NotHovered || root.hover != ChildHovered {
		t.Errorf("a=%v w=%v root=%v", a.hover, w.hover, root.hover)
	}
}

func TestHoverUsesLayoutOffsets(t *testing.T) {
	a, b := newLeaf("a", 0.2, 0.1), newLeaf("b", 0.1, 0.3)
	root := vbox(a, b)
	hoverChain(Derive[string](root), Vec2{0.05, 0.25})
	if b.hover != Hovered || a.hover != NotHovered {
		t.Errorf("a=%v b=%v, want b hovered", a.hover, b.hover)
	}
}

// intLeaf is a leaf speaking a different event type.
type intLeaf struct {
	hover HoveredStatus
}

func (l *intLeaf) Render() []Shape                  { return nil }
func (l *intLeaf) SetMouseStatus(MouseStatus) []int { return nil }
func (l *intLeaf) HitTest(p Vec2) bool              { return RectFromSize(Vec2{1, 1}).Contains(p) }
func (l *intLeaf) Width() float64                   { return 1 }
func (l *intLeaf) Height() float64                  { return 1 }
func (l *intLeaf) SetHoveredStatus(s HoveredStatus) { l.hover = s }

type intBox struct {
	child RawComponent[int]
	hover HoveredStatus
}

func (b *intBox) Layout() Layout[int]              { return SingleChild(b.child) }
func (b *intBox) SetHoveredStatus(s HoveredStatus) { b.hover = s }

func TestHoverThroughMappedSubtree(t *testing.T) {
	l := &intLeaf{}
	inner := &intBox{child: l}
	root := single(MapComponent[int, string](inner, func(int) string { return "" }))

	_, chain := hoverChain(Derive[string](root), Vec2{0.5, 0.5})
	if len(chain) != 3 {
		t.Errorf("chain length = %d, want 3: the mapping is not a level", len(chain))
	}
	if l.hover != Hovered || inner.hover != ChildHovered || root.hover != ChildHovered {
		t.Errorf("leaf=%v inner=%v root=%v", l.hover, inner.hover, root.hover)
	}
}
