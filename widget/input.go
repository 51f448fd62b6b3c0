package widget

import (
	"github.com/phanxgames/twig"
	"github.com/rivo/uniseg"
)

// Focused is reported by an Input when the pointer button goes down over it.
// Keyboard focus itself is left to the application.
type Focused struct{}

// Input is an editable line of text. Editing is driven by the application
// through SetText, Append and Backspace.
type Input[E any] struct {
	text    Text[E]
	onFocus func(Focused) E

	prevPressed bool
}

// NewInput creates an empty input using the default font and size of d.
// onFocus converts a click into the tree's event type; nil makes the input
// silent.
func NewInput[E any](d twig.Defaults, onFocus func(Focused) E) *Input[E] {
	return &Input[E]{
		text:    Text[E]{font: d.Font, em: d.TextEm},
		onFocus: onFocus,
	}
}

// SetText replaces the content.
func (in *Input[E]) SetText(s string) {
	in.text.SetText(s)
}

// Text returns the content.
func (in *Input[E]) Text() string {
	return in.text.Content()
}

// Append adds s at the end of the content.
func (in *Input[E]) Append(s string) {
	in.text.SetText(in.text.Content() + s)
}

// Backspace removes the last user-perceived character, if any.
func (in *Input[E]) Backspace() {
	content := in.text.Content()
	if content == "" {
		return
	}
	var last int
	state := -1
	rest := content
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(content) - len(rest) - len(cluster)
	}
	in.text.SetText(content[:last])
}

// SetFont changes the font.
func (in *Input[E]) SetFont(font twig.Font) {
	in.text.SetFont(font)
}

// SetEm changes the text height in logical units.
func (in *Input[E]) SetEm(em float64) {
	in.text.SetEm(em)
}

func (in *Input[E]) Render() []twig.Shape {
	return in.text.Render()
}

func (in *Input[E]) SetMouseStatus(m twig.MouseStatus) []E {
	var out []E
	if m.Over && m.Pressed && !in.prevPressed && in.onFocus != nil {
		out = append(out, in.onFocus(Focused{}))
	}
	in.prevPressed = m.Pressed
	return out
}

// HitTest accepts the whole line, even when empty, so an empty input can
// still be clicked: the width never drops below one em.
func (in *Input[E]) HitTest(pos twig.Vec2) bool {
	return pos.X >= 0 && pos.X < in.Width() && pos.Y >= 0 && pos.Y < in.text.Em()
}

func (in *Input[E]) Width() float64 {
	w := in.text.Width()
	if w < in.text.Em() {
		return in.text.Em()
	}
	return w
}

func (in *Input[E]) Height() float64 {
	return in.text.Height()
}
