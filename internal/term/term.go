// Package term hosts the field in a terminal. The field is rasterised at two
// pixels per cell and shown with upper half block glyphs, so each cell carries
// a foreground pixel on top and a background pixel below.
package term

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/neural-field-go/internal/config"
	"github.com/olivierh59500/neural-field-go/internal/network"
	"github.com/olivierh59500/neural-field-go/internal/raster"
)

const halfBlock = '▀'

// Viewport returns the field size matching a cols x rows terminal.
func Viewport(cols, rows int, cfg config.Terminal) (float64, float64) {
	return float64(cols) * cfg.CellWidth, float64(rows) * cfg.CellHeight
}

// Host drives a field on a tcell screen.
type Host struct {
	screen tcell.Screen
	cfg    config.Terminal
	field  *network.Field
	loop   *network.Loop
	sched  *network.FrameScheduler
	canvas *raster.Canvas
	logger *slog.Logger

	userPaused bool
	focused    bool
	showStats  bool
}

// New attaches field to an initialised screen and starts its loop.
func New(screen tcell.Screen, cfg config.Config, field *network.Field, logger *slog.Logger) (*Host, error) {
	cols, rows := screen.Size()
	tc := cfg.Terminal
	h := &Host{
		screen:  screen,
		cfg:     tc,
		field:   field,
		sched:   &network.FrameScheduler{},
		canvas:  raster.New(cols, rows*2, 1/tc.CellWidth, 2/tc.CellHeight, raster.WithGrain(cfg.Field.Grain, cfg.Field.Seed)),
		logger:  logger,
		focused: true,
	}
	h.loop = network.NewLoop(field, h.canvas, h.sched, logger)
	if err := h.loop.Run(); err != nil {
		return nil, err
	}
	return h, nil
}

// Run initialises screen, builds a field sized to it with newField and shows
// it until ctx is done or the user quits. The terminal is restored on return.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, newField func(width, height float64) *network.Field, logger *slog.Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	field := newField(Viewport(cols, rows, cfg.Terminal))

	h, err := New(screen, cfg, field, logger)
	if err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	logger.Info("terminal attached", "cols", cols, "rows", rows,
		"nodes", len(field.Nodes), "connections", len(field.Connections))
	return h.Serve(ctx)
}

// Serve pumps events and frames until ctx is done or a quit key is pressed.
func (h *Host) Serve(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(h.cfg.FrameMillis) * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("terminal detached", "frames", h.loop.Frames())
			return nil
		case ev := <-events:
			if !h.Handle(ev) {
				h.logger.Info("terminal detached", "frames", h.loop.Frames())
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick releases one pending frame and shows it. It reports whether a frame
// was drawn.
func (h *Host) Tick() bool {
	if !h.sched.Flush() {
		return false
	}
	h.present()
	return true
}

// Handle applies one terminal event. It returns false when the user asked
// to quit.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				h.userPaused = !h.userPaused
				h.syncPause()
			case 'd', 'D':
				h.showStats = !h.showStats
				h.present()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		cols, rows := h.screen.Size()
		if onBorder(x, y, cols, rows) {
			h.field.ClearPointer()
			break
		}
		h.field.SetPointer((float64(x)+0.5)*h.cfg.CellWidth, (float64(y)+0.5)*h.cfg.CellHeight)

	case *tcell.EventFocus:
		h.focused = ev.Focused
		if !ev.Focused {
			h.field.ClearPointer()
		}
		h.syncPause()

	case *tcell.EventResize:
		h.resize()
	}
	return true
}

// onBorder reports whether a cell lies on the outer ring of the screen.
// Terminals send no leave event, so a cursor reaching the edge is treated
// as leaving.
func onBorder(x, y, cols, rows int) bool {
	return x <= 0 || y <= 0 || x >= cols-1 || y >= rows-1
}

// Paused reports whether the loop is currently stopped.
func (h *Host) Paused() bool { return !h.loop.Running() }

// Frames is the number of frames drawn so far.
func (h *Host) Frames() uint64 { return h.loop.Frames() }

func (h *Host) syncPause() {
	if h.userPaused || !h.focused {
		h.loop.Pause()
	} else {
		h.loop.Resume()
	}
}

func (h *Host) resize() {
	h.screen.Sync()
	cols, rows := h.screen.Size()
	h.canvas.Resize(cols, rows*2)
	h.field.Resize(Viewport(cols, rows, h.cfg))
	h.logger.Debug("viewport resized", "cols", cols, "rows", rows)

	// redraw in place while stopped
	if !h.loop.Running() {
		h.field.Draw(h.canvas)
		h.present()
	}
}

// present copies the canvas to the screen, compositing over white.
func (h *Host) present() {
	img := h.canvas.Image()
	cols, rows := h.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := cellColor(img, x, y*2)
			bottom := cellColor(img, x, y*2+1)
			h.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	if h.showStats {
		h.drawStats()
	}
	h.screen.Show()
}

func (h *Host) drawStats() {
	st := h.field.Stats()
	line := fmt.Sprintf(" frames %d  nodes %d  links %d  packets %d  energy %.2f ",
		h.loop.Frames(), st.Nodes, st.Connections, st.Packets, st.MeanEnergy)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	cols, _ := h.screen.Size()
	for i, r := range []rune(line) {
		if i >= cols {
			break
		}
		h.screen.SetContent(i, 0, r, nil, style)
	}
}

// cellColor reads a premultiplied pixel and flattens it onto white.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return tcell.ColorWhite
	}
	c := img.RGBAAt(x, y)
	bg := 255 - int32(c.A)
	return tcell.NewRGBColor(int32(c.R)+bg, int32(c.G)+bg, int32(c.B)+bg)
}
