package ebitenui

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/twig"
)

// Run opens a window described by cfg and drives ui until the window is
// closed. The Ui's viewport is set to the window size before the first
// frame.
func Run[E any, C twig.Component[E]](ui *twig.Ui[E, C], cfg RunConfig) error {
	return RunGame(ui, cfg, nil)
}

// RunGame is Run with a per-tick hook; see Game.OnUpdate.
func RunGame[E any, C twig.Component[E]](ui *twig.Ui[E, C], cfg RunConfig, onUpdate func() error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("ebitenui: window size %dx%d is empty", cfg.Width, cfg.Height)
	}
	r, err := NewRenderer()
	if err != nil {
		return err
	}
	if err := cfg.Apply(r); err != nil {
		return err
	}

	ui.SetDebugMode(cfg.Debug)
	ui.SetViewport(twig.Size{Width: cfg.Width, Height: cfg.Height})

	g := NewGame(ui, r)
	g.SetClearColor(cfg.clearColor())
	g.OnUpdate = onUpdate
	g.ShowFPS(cfg.ShowFPS)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
