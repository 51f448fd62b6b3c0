package twig

import "github.com/rivo/uniseg"

// ShapeKind identifies the kind of drawing primitive a Shape holds.
type ShapeKind uint8

const (
	ShapePoint     ShapeKind = iota // single point at From
	ShapeLine                       // segment From -> To
	ShapeRectangle                  // filled rectangle with corners From and To
	ShapeImage                      // image stretched between From and To
	ShapeText                       // text whose bottom-left corner is at From
)

// String returns the name of the kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapePoint:
		return "point"
	case ShapeLine:
		return "line"
	case ShapeRectangle:
		return "rectangle"
	case ShapeImage:
		return "image"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is a single drawable primitive. A single flat struct is used for all
// kinds so shape lists stay contiguous; fields that do not apply to Kind are
// zero. Shapes are values: Translate returns a copy and never mutates.
type Shape struct {
	Kind ShapeKind

	// From is the location of a point, the start of a line, the first corner
	// of a rectangle or image, and the bottom-left anchor of text.
	From Vec2
	// To is the end of a line and the opposite corner of a rectangle or image.
	To Vec2

	Color Color // point, line, rectangle
	Image Image // image

	// Text fields
	Text string
	Font Font
	Em   float64 // text height in logical units
}

// Point returns a point shape.
func Point(at Vec2, c Color) Shape {
	return Shape{Kind: ShapePoint, From: at, Color: c}
}

// Line returns a line shape.
func Line(from, to Vec2, c Color) Shape {
	return Shape{Kind: ShapeLine, From: from, To: to, Color: c}
}

// Rectangle returns a filled rectangle shape.
func Rectangle(from, to Vec2, c Color) Shape {
	return Shape{Kind: ShapeRectangle, From: from, To: to, Color: c}
}

// ImageRect returns an image shape stretched between two corners.
func ImageRect(from, to Vec2, img Image) Shape {
	return Shape{Kind: ShapeImage, From: from, To: to, Image: img}
}

// Text returns a text shape anchored at its bottom-left corner.
func Text(s string, font Font, bottomLeft Vec2, em float64) Shape {
	return Shape{Kind: ShapeText, Text: s, Font: font, From: bottomLeft, Em: em}
}

// Translate returns a copy of s with every positional field shifted by offset.
// Text and points only carry one position; the other kinds move both corners.
func (s Shape) Translate(offset Vec2) Shape {
	s.From = s.From.Add(offset)
	switch s.Kind {
	case ShapeLine, ShapeRectangle, ShapeImage:
		s.To = s.To.Add(offset)
	}
	return s
}

// TextWidth returns the logical width of text rendered at em: em per terminal
// cell, so wide runes count twice and combining marks do not count.
func TextWidth(text string, em float64) float64 {
	return em * float64(uniseg.StringWidth(text))
}

// Width returns the horizontal extent of the shape. Points have no extent.
func (s Shape) Width() float64 {
	switch s.Kind {
	case ShapeLine, ShapeRectangle, ShapeImage:
		return s.To.X - s.From.X
	case ShapeText:
		return TextWidth(s.Text, s.Em)
	default:
		return 0
	}
}

// Height returns the vertical extent of the shape. Points have no extent.
func (s Shape) Height() float64 {
	switch s.Kind {
	case ShapeLine, ShapeRectangle, ShapeImage:
		return s.To.Y - s.From.Y
	case ShapeText:
		return s.Em
	default:
		return 0
	}
}

// Bounds returns the axis-aligned box covering the shape, normalized so that
// Min <= Max even when the corners were given in reverse order.
func (s Shape) Bounds() Rect {
	switch s.Kind {
	case ShapeLine, ShapeRectangle, ShapeImage:
		return Rect{Min: s.From, Max: s.From}.Union(Rect{Min: s.To, Max: s.To})
	case ShapeText:
		return Rect{Min: s.From, Max: s.From.Add(Vec2{TextWidth(s.Text, s.Em), s.Em})}
	default:
		return Rect{Min: s.From, Max: s.From}
	}
}

// translateAll shifts every shape of src by offset and appends the results
// to dst.
func translateAll(dst, src []Shape, offset Vec2) []Shape {
	for _, s := range src {
		dst = append(dst, s.Translate(offset))
	}
	return dst
}
