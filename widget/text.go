// Package widget provides ready-made twig components: Text, Button and
// Input. Each is generic over the tree's event type E so it can sit anywhere
// in a tree; widgets that report events take a conversion function into E
// when they are built.
package widget

import "github.com/phanxgames/twig"

// Text displays a single line of text. It never reports events.
type Text[E any] struct {
	content string
	font    twig.Font
	em      float64
}

// NewText creates a text widget using the default font and size of d.
func NewText[E any](d twig.Defaults, content string) *Text[E] {
	return &Text[E]{content: content, font: d.Font, em: d.TextEm}
}

// SetText replaces the displayed text.
func (t *Text[E]) SetText(content string) {
	t.content = content
}

// Content returns the displayed text.
func (t *Text[E]) Content() string {
	return t.content
}

// SetFont changes the font.
func (t *Text[E]) SetFont(font twig.Font) {
	t.font = font
}

// SetEm changes the text height in logical units.
func (t *Text[E]) SetEm(em float64) {
	t.em = em
}

// Em returns the text height in logical units.
func (t *Text[E]) Em() float64 {
	return t.em
}

func (t *Text[E]) Render() []twig.Shape {
	if t.content == "" {
		return nil
	}
	return []twig.Shape{twig.Text(t.content, t.font, twig.Vec2{}, t.em)}
}

func (t *Text[E]) SetMouseStatus(twig.MouseStatus) []E {
	return nil
}

func (t *Text[E]) HitTest(pos twig.Vec2) bool {
	return pos.X >= 0 && pos.X < t.Width() && pos.Y >= 0 && pos.Y < t.em
}

func (t *Text[E]) Width() float64 {
	return twig.TextWidth(t.content, t.em)
}

func (t *Text[E]) Height() float64 {
	return t.em
}
