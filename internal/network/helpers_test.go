package network

import (
	"image/color"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/olivierh59500/neural-field-go/internal/config"
	"github.com/olivierh59500/neural-field-go/internal/surface"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// nopSurface swallows every draw call.
type nopSurface struct{}

func (nopSurface) FillLinearGradient(x0, y0, x1, y1 float64, stops []surface.Stop)         {}
func (nopSurface) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA)          {}
func (nopSurface) FillCircle(cx, cy, r float64, c color.NRGBA)                             {}
func (nopSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, dash []float64) {}
func (nopSurface) RoundRect(x, y, w, h, radius float64, fill, stroke color.NRGBA, sw float64) {
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestField(seed int64, nodes int) (*Field, *ManualClock) {
	cfg := config.Default().Field
	cfg.Nodes = nodes
	clock := NewManualClock(testEpoch)
	return NewField(800, 600, cfg, rand.New(rand.NewSource(seed)), clock), clock
}

// emptyField has no nodes; tests place their own.
func emptyField(width, height float64) *Field {
	f, _ := newTestField(1, 0)
	f.Width, f.Height = width, height
	return f
}

func fixedNode(x, y float64) *Node {
	return &Node{X: x, Y: y, HomeX: x, HomeY: y, Radius: 3, MinRadius: 1.5, MaxRadius: 6, Opacity: 1, Energy: 0.5}
}
