package twig

// Test components shared by the package tests.

// leaf is a raw component drawing a single rectangle of w x h. It records
// every status it is told and, when emit is set, reports its name whenever
// the pointer is over it.
type leaf struct {
	name  string
	w, h  float64
	color Color
	emit  bool

	statuses []MouseStatus
	renders  int
	hover    HoveredStatus
	hoverN   int
}

func newLeaf(name string, w, h float64) *leaf {
	return &leaf{name: name, w: w, h: h, color: Color{1, 1, 1}}
}

func (l *leaf) Render() []Shape {
	l.renders++
	return []Shape{Rectangle(Vec2{}, Vec2{l.w, l.h}, l.color)}
}

func (l *leaf) SetMouseStatus(m MouseStatus) []string {
	l.statuses = append(l.statuses, m)
	if l.emit && m.Over {
		return []string{l.name}
	}
	return nil
}

func (l *leaf) HitTest(p Vec2) bool {
	return RectFromSize(Vec2{l.w, l.h}).Contains(p)
}

func (l *leaf) Width() float64  { return l.w }
func (l *leaf) Height() float64 { return l.h }

func (l *leaf) SetHoveredStatus(s HoveredStatus) {
	l.hover = s
	l.hoverN++
}

// last returns the most recent status, or the zero status if none.
func (l *leaf) last() MouseStatus {
	if len(l.statuses) == 0 {
		return MouseStatus{}
	}
	return l.statuses[len(l.statuses)-1]
}

// box is a layout component over fixed children. It listens to hover but has
// no child event handler, so it absorbs every child event.
type box struct {
	kind      LayoutKind
	children  []RawComponent[string]
	positions []Vec2 // LayoutPositioned only

	hover  HoveredStatus
	layout int // Layout calls
}

func hbox(children ...RawComponent[string]) *box {
	return &box{kind: LayoutHorizontalBox, children: children}
}

func vbox(children ...RawComponent[string]) *box {
	return &box{kind: LayoutVerticalBox, children: children}
}

func single(child RawComponent[string]) *box {
	return &box{kind: LayoutSingleChild, children: []RawComponent[string]{child}}
}

func (b *box) Layout() Layout[string] {
	b.layout++
	switch b.kind {
	case LayoutSingleChild:
		return SingleChild(b.children[0])
	case LayoutVerticalBox:
		return VerticalBox(b.children...)
	case LayoutPositioned:
		placed := make([]PositionedChild[string], len(b.children))
		for i, c := range b.children {
			placed[i] = PositionedChild[string]{Child: c, X: b.positions[i].X, Y: b.positions[i].Y}
		}
		return PositionedChildren(placed...)
	default:
		return HorizontalBox(b.children...)
	}
}

func (b *box) SetHoveredStatus(s HoveredStatus) {
	b.hover = s
}

// relay passes child events on, tagged with the child ID.
type relay struct {
	*box
	drop string // events equal to drop are absorbed
}

func (r *relay) HandleChildEvent(childID int, ev string) (string, bool) {
	if ev == r.drop {
		return "", false
	}
	return string(rune('0'+childID)) + ":" + ev, true
}

// sized overrides the computed dimensions.
type sized struct {
	*box
	size Vec2
}

func (s *sized) Dimensions() (Vec2, bool) {
	return s.size, true
}

// bounded overrides the interactive area.
type bounded struct {
	*box
	rect Rect
}

func (b *bounded) BoundingBox() (Rect, bool) {
	return b.rect, true
}
