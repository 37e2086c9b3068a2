// Package display hosts the field in a desktop window through ebiten.
package display

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/neural-field-go/internal/config"
	"github.com/olivierh59500/neural-field-go/internal/network"
)

// Game adapts a network loop to ebiten. Input is read in Update, frames are
// released to the loop in Draw, and Layout forwards window resizes.
type Game struct {
	field   *network.Field
	loop    *network.Loop
	sched   *network.FrameScheduler
	surface *Surface
	logger  *slog.Logger

	focus     focusTracker
	showStats bool
}

// NewGame starts a loop over field drawing into an ebiten surface.
func NewGame(field *network.Field, cfg config.Field, logger *slog.Logger) (*Game, error) {
	g := &Game{
		field:   field,
		sched:   &network.FrameScheduler{},
		surface: NewSurface(cfg.Grain, cfg.Seed),
		logger:  logger,
		focus:   focusTracker{focused: true},
	}
	g.loop = network.NewLoop(field, g.surface, g.sched, logger)
	if err := g.loop.Run(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update is called each tick by ebiten
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.focus.toggleUser()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showStats = !g.showStats
	}

	focused := ebiten.IsFocused()
	switch g.focus.observe(focused) {
	case actionPause:
		g.loop.Pause()
	case actionResume:
		g.loop.Resume()
	}

	x, y := ebiten.CursorPosition()
	if p, ok := pointerAt(x, y, g.field.Width, g.field.Height, focused); ok {
		g.field.SetPointer(p.X, p.Y)
	} else {
		g.field.ClearPointer()
	}
	return nil
}

// Draw is called each frame by ebiten. The screen is not cleared between
// frames, so a paused field keeps showing its last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	if !g.sched.Flush() {
		return
	}
	if g.showStats {
		st := g.field.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  nodes %d  links %d  packets %d  energy %.2f",
			ebiten.ActualTPS(), ebiten.ActualFPS(), st.Nodes, st.Connections, st.Packets, st.MeanEnergy), 8, 8)
	}
}

// Layout keeps one screen pixel per viewport unit and resizes the field
// with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(1, outsideWidth), max(1, outsideHeight)
	if float64(w) != g.field.Width || float64(h) != g.field.Height {
		g.logger.Debug("viewport resized", "width", w, "height", h)
		g.field.Resize(float64(w), float64(h))
	}
	return w, h
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, field *network.Field, logger *slog.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetScreenClearedEveryFrame(false)

	g, err := NewGame(field, cfg.Field, logger)
	if err != nil {
		return fmt.Errorf("start window: %w", err)
	}
	logger.Info("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height,
		"nodes", len(field.Nodes), "connections", len(field.Connections))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info("window closed", "frames", g.loop.Frames())
	return nil
}
