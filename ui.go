package twig

import (
	"reflect"
	"time"
)

// Ui is the top-level object. It owns the root component, the viewport and
// pointer state, and the shapes of the current frame. Every input method
// recomputes the frame before returning, so Draw always reflects the latest
// state. A Ui is not safe for concurrent use.
type Ui[E any, C Component[E]] struct {
	root C
	raw  RawComponent[E]

	shapes []Shape
	events []E

	viewport Size
	mouseX   int
	mouseY   int
	mouseIn  bool
	pressed  bool
	pointer  Vec2
	outside  Vec2

	store   EventStore[E]
	debug   bool
	updates int
	open    int // guards not yet released
}

// New creates a Ui around root with the given viewport in pixels and
// computes the first frame.
func New[E any, C Component[E]](root C, viewport Size) *Ui[E, C] {
	if isNil(root) {
		panic("twig: nil root component")
	}
	u := &Ui[E, C]{
		root:     root,
		raw:      Derive[E](root),
		viewport: viewport,
		outside:  NewDefaults().OutsidePointer,
	}
	u.update()
	return u
}

// SetViewport changes the viewport size in pixels.
func (u *Ui[E, C]) SetViewport(size Size) {
	u.viewport = size
	u.update()
}

// Viewport returns the viewport size in pixels.
func (u *Ui[E, C]) Viewport() Size {
	return u.viewport
}

// SetMousePosition records the pointer position in pixels, origin at the
// top-left corner of the window. ok=false means the pointer left the window.
func (u *Ui[E, C]) SetMousePosition(x, y int, ok bool) {
	u.mouseX, u.mouseY, u.mouseIn = x, y, ok
	u.update()
}

// SetMousePressed records whether the pointer button is down.
func (u *Ui[E, C]) SetMousePressed(pressed bool) {
	u.pressed = pressed
	u.update()
}

// SetOutsidePointer changes the logical position dispatched while the
// pointer is outside the window. It does not recompute the frame.
func (u *Ui[E, C]) SetOutsidePointer(p Vec2) {
	u.outside = p
}

// SetEventStore sets where events reported by the root are sent after each
// update. nil disables forwarding.
func (u *Ui[E, C]) SetEventStore(store EventStore[E]) {
	u.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-update
// timing stats and tree warnings are logged to stderr.
func (u *Ui[E, C]) SetDebugMode(enabled bool) {
	u.debug = enabled
}

// Root returns the root component for reading. Mutate it through
// MainComponent or Mutate so the frame is recomputed.
func (u *Ui[E, C]) Root() C {
	return u.root
}

// Draw returns the shapes of the current frame in the logical space, ordered
// bottom to top. The slice is owned by the Ui and replaced on every update;
// callers must not modify it.
func (u *Ui[E, C]) Draw() []Shape {
	return u.shapes
}

// Events returns the events the root reported during the last update.
func (u *Ui[E, C]) Events() []E {
	return u.events
}

// Pointer returns the logical pointer position used by the last update.
func (u *Ui[E, C]) Pointer() Vec2 {
	return u.pointer
}

// Updates returns how many times the frame has been computed.
func (u *Ui[E, C]) Updates() int {
	return u.updates
}

// PixelToLogical converts a pixel position with its origin at the top-left
// corner of a viewport into the logical space, where the viewport spans
// -1..1 on both axes with y pointing up.
func PixelToLogical(x, y int, viewport Size) Vec2 {
	return Vec2{
		X: -1 + 2*float64(x)/float64(viewport.Width),
		Y: 1 - 2*float64(y)/float64(viewport.Height),
	}
}

// LogicalToPixel is the inverse of PixelToLogical, without rounding.
func LogicalToPixel(p Vec2, viewport Size) (x, y float64) {
	x = (p.X + 1) / 2 * float64(viewport.Width)
	y = (1 - p.Y) / 2 * float64(viewport.Height)
	return x, y
}

// logicalPointer returns the position dispatched this update. A pointer
// outside the window is still dispatched, at the outside sentinel.
func (u *Ui[E, C]) logicalPointer() Vec2 {
	if !u.mouseIn || u.viewport.Empty() {
		return u.outside
	}
	return PixelToLogical(u.mouseX, u.mouseY, u.viewport)
}

// update recomputes the frame: mouse dispatch first so widget state is
// settled, then hover statuses, then rendering. All three walk the tree with
// the same offsets.
func (u *Ui[E, C]) update() {
	var stats debugStats
	var t0 time.Time
	if u.debug {
		t0 = time.Now()
	}

	u.pointer = u.logicalPointer()
	u.events = u.raw.SetMouseStatus(At(u.pointer, u.pressed))

	if u.debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	pass, chain := hoverChain(u.raw, u.pointer)

	if u.debug {
		stats.hoverTime = time.Since(t0)
		t0 = time.Now()
	}

	u.shapes = u.raw.Render()
	u.updates++

	if u.debug {
		stats.renderTime = time.Since(t0)
		stats.shapeCount = len(u.shapes)
		stats.eventCount = len(u.events)
		stats.visited = len(pass.visited)
		stats.chainLen = len(chain)
		stats.treeDepth = pass.maxDepth
		stats.openGuards = u.open
		u.debugLog(stats)
	}

	if u.store != nil {
		for _, ev := range u.events {
			u.store.EmitEvent(ev)
		}
	}
}

// isNil reports whether v is nil or a typed nil pointer, map, slice, func or
// channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
