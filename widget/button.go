package widget

import "github.com/phanxgames/twig"

// Pressed is reported by a Button when it is clicked.
type Pressed struct{}

// Button is a fixed-size rectangle that reports a click when the button is
// pressed and released while the pointer stays over it.
type Button[E any] struct {
	size   twig.Vec2
	color  twig.Color
	darken float64
	label  string
	font   twig.Font
	em     float64

	onPress func(Pressed) E

	hovered     bool
	armed       bool // pointer was over with the button up, a press may follow
	prevPressed bool
}

// NewButton creates a button sized and colored from d. onPress converts the
// click into the tree's event type; nil makes the button silent.
func NewButton[E any](d twig.Defaults, onPress func(Pressed) E) *Button[E] {
	return &Button[E]{
		size:    d.ButtonSize,
		color:   d.ButtonColor,
		darken:  d.HoverDarken,
		font:    d.ButtonFont,
		em:      d.ButtonSize.Y / 2,
		onPress: onPress,
	}
}

// SetColor changes the fill color at rest.
func (b *Button[E]) SetColor(c twig.Color) {
	b.color = c
}

// SetLabel sets the text drawn over the button. Empty hides it.
func (b *Button[E]) SetLabel(label string) {
	b.label = label
}

// SetSize changes the button size in logical units.
func (b *Button[E]) SetSize(size twig.Vec2) {
	b.size = size
}

// Hovered reports whether the pointer was over the button at the last
// dispatch.
func (b *Button[E]) Hovered() bool {
	return b.hovered
}

// Color returns the fill used for the current state.
func (b *Button[E]) Color() twig.Color {
	if b.hovered {
		return b.color.Darken(b.darken)
	}
	return b.color
}

func (b *Button[E]) Render() []twig.Shape {
	shapes := []twig.Shape{twig.Rectangle(twig.Vec2{}, b.size, b.Color())}
	if b.label != "" {
		pad := (b.size.Y - b.em) / 2
		shapes = append(shapes, twig.Text(b.label, b.font, twig.Vec2{X: pad, Y: pad}, b.em))
	}
	return shapes
}

func (b *Button[E]) SetMouseStatus(m twig.MouseStatus) []E {
	b.hovered = m.Over

	var out []E
	if m.Over && b.armed && b.prevPressed && !m.Pressed && b.onPress != nil {
		out = append(out, b.onPress(Pressed{}))
	}

	switch {
	case !m.Over:
		b.armed = false
	case !m.Pressed:
		b.armed = true
	}
	b.prevPressed = m.Pressed
	return out
}

func (b *Button[E]) HitTest(pos twig.Vec2) bool {
	return pos.X >= 0 && pos.X < b.size.X && pos.Y >= 0 && pos.Y < b.size.Y
}

func (b *Button[E]) Width() float64 {
	return b.size.X
}

func (b *Button[E]) Height() float64 {
	return b.size.Y
}

// BoundingBox reports the button's rectangle in its local space.
func (b *Button[E]) BoundingBox() (twig.Rect, bool) {
	return twig.RectFromSize(b.size), true
}
