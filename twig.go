package twig

import "math"

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
// Positions are expressed in the logical coordinate space: (-1, -1) is the
// bottom-left corner of the viewport and (1, 1) the top-right.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// ApproxEqual reports whether v and o differ by at most eps on both axes.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Size is a viewport size in pixels.
type Size struct {
	Width, Height int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Darken returns c with every component multiplied by f.
func (c Color) Darken(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Rect is an axis-aligned rectangle given by two corners. Min is the
// bottom-left corner and Max the top-right one.
type Rect struct {
	Min, Max Vec2
}

// RectFromSize returns the rectangle spanning the origin to size.
func RectFromSize(size Vec2) Rect {
	return Rect{Max: size}
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Translate returns r shifted by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.Min.Add(v), r.Max.Add(v)}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Size returns the width and height of r.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// HoveredStatus is the state of a component in regards to the pointer.
type HoveredStatus uint8

const (
	NotHovered   HoveredStatus = iota // pointer is neither over the component nor a descendant
	Hovered                           // component is the deepest one under the pointer
	ChildHovered                      // a descendant is the deepest one under the pointer
)

// String returns the name of the status.
func (s HoveredStatus) String() string {
	switch s {
	case Hovered:
		return "Hovered"
	case ChildHovered:
		return "ChildHovered"
	default:
		return "NotHovered"
	}
}

// MouseStatus is what a component is told about the pointer during dispatch.
// Position is in the component's own local space and only meaningful when Over
// is true. Pressed is the button state and is forwarded to every component,
// whether the pointer is over it or not.
type MouseStatus struct {
	Position Vec2
	Over     bool
	Pressed  bool
}

// At returns a status with the pointer over the component at pos.
func At(pos Vec2, pressed bool) MouseStatus {
	return MouseStatus{Position: pos, Over: true, Pressed: pressed}
}

// Away returns a status with the pointer outside the component.
func Away(pressed bool) MouseStatus {
	return MouseStatus{Pressed: pressed}
}
