package ebitenui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/twig"
)

// Game adapts a twig.Ui to ebiten.Game. Each tick it forwards the cursor and
// left button to the Ui, only when they changed, and each frame it draws the
// Ui's shapes. The window size is forwarded from Layout.
type Game[E any, C twig.Component[E]] struct {
	ui       *twig.Ui[E, C]
	renderer *Renderer
	clear    twig.Color

	// OnUpdate, when set, runs once per tick after input has been forwarded.
	// Returning an error stops the game; ebiten.Termination exits cleanly.
	OnUpdate func() error

	cursor   cursorState
	fps      *fpsOverlay
	reported bool
}

type cursorState struct {
	x, y    int
	inside  bool
	pressed bool
	valid   bool
}

// NewGame creates a game that drives ui and draws with r.
func NewGame[E any, C twig.Component[E]](ui *twig.Ui[E, C], r *Renderer) *Game[E, C] {
	return &Game[E, C]{ui: ui, renderer: r}
}

// SetClearColor sets the color the screen is filled with before drawing.
func (g *Game[E, C]) SetClearColor(c twig.Color) {
	g.clear = c
}

// ShowFPS toggles the FPS/TPS overlay drawn over the shapes.
func (g *Game[E, C]) ShowFPS(show bool) {
	switch {
	case show && g.fps == nil:
		g.fps = newFPSOverlay()
	case !show:
		g.fps = nil
	}
}

// Ui returns the driven Ui.
func (g *Game[E, C]) Ui() *twig.Ui[E, C] {
	return g.ui
}

// Update implements ebiten.Game.
func (g *Game[E, C]) Update() error {
	x, y := ebiten.CursorPosition()
	g.feedPointer(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if g.fps != nil {
		g.fps.update()
	}
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// feedPointer forwards a cursor sample to the Ui. A cursor outside the
// viewport is reported as having left the window.
func (g *Game[E, C]) feedPointer(x, y int, pressed bool) {
	vp := g.ui.Viewport()
	inside := x >= 0 && y >= 0 && x < vp.Width && y < vp.Height
	prev := g.cursor
	g.cursor = cursorState{x: x, y: y, inside: inside, pressed: pressed, valid: true}

	if !prev.valid || prev.inside != inside || (inside && (prev.x != x || prev.y != y)) {
		g.ui.SetMousePosition(x, y, inside)
	}
	if !prev.valid || prev.pressed != pressed {
		g.ui.SetMousePressed(pressed)
	}
}

// Draw implements ebiten.Game.
func (g *Game[E, C]) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.clear))
	if err := g.renderer.Draw(screen, g.ui.Draw()); err != nil && !g.reported {
		g.reported = true
		log.Printf("ebitenui: draw: %v", err)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The Ui always sees the real window size so
// its logical space stretches over the whole window.
func (g *Game[E, C]) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := twig.Size{Width: outsideWidth, Height: outsideHeight}
	if size != g.ui.Viewport() {
		g.ui.SetViewport(size)
	}
	return outsideWidth, outsideHeight
}
