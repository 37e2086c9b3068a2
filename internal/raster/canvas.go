// Package raster is a software implementation of surface.Surface. It backs
// the terminal host and headless snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"slices"

	"github.com/aquilax/go-perlin"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// msaa is the sample count of the software backend.
const msaa = 4

// Canvas draws with an HTML5-style canvas on a software backend. Viewport
// coordinates are mapped to pixels by (sx, sy), so one pixel may cover
// several viewport units.
type Canvas struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	sx, sy  float64

	noise *perlin.Perlin
	grain float64

	backdrop     []uint8
	backdropKey  backdropKey
	backdropStop []surface.Stop
}

type backdropKey struct {
	x0, y0, x1, y1 float64
	w, h           int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithGrain adds perlin noise of the given amplitude to the background
// gradient.
func WithGrain(amount float64, seed int64) Option {
	return func(c *Canvas) {
		if amount <= 0 {
			return
		}
		c.grain = amount
		c.noise = perlin.NewPerlin(2, 2, 3, seed)
	}
}

// New creates a w x h pixel canvas where one viewport unit is sx by sy pixels.
func New(w, h int, sx, sy float64, opts ...Option) *Canvas {
	c := &Canvas{sx: sx, sy: sy}
	c.attach(softwarebackend.New(w, h))
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Canvas) attach(b *softwarebackend.SoftwareBackend) {
	b.MSAA = msaa
	c.backend = b
	c.cv = canvas.New(b)
	c.cv.Scale(c.sx, c.sy)
	c.backdrop = nil
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.backend.Image }

// Size returns the pixel dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.backend.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the pixel buffer, discarding its contents.
func (c *Canvas) Resize(w, h int) {
	if cw, ch := c.Size(); cw == w && ch == h {
		return
	}
	c.attach(softwarebackend.New(w, h))
}

// WritePNG encodes the current frame.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.backend.Image); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// FillLinearGradient implements surface.Surface. The gradient is laid over a
// white page and grained, once per geometry; later frames copy it back.
func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []surface.Stop) {
	w, h := c.Size()
	key := backdropKey{x0, y0, x1, y1, w, h}
	if c.backdrop == nil || c.backdropKey != key || !slices.Equal(c.backdropStop, stops) {
		c.renderBackdrop(key, stops)
		c.backdrop = slices.Clone(c.backend.Image.Pix)
		c.backdropKey = key
		c.backdropStop = slices.Clone(stops)
		return
	}
	copy(c.backend.Image.Pix, c.backdrop)
}

func (c *Canvas) renderBackdrop(k backdropKey, stops []surface.Stop) {
	vw, vh := float64(k.w)/c.sx, float64(k.h)/c.sy
	c.cv.ClearRect(0, 0, vw, vh)
	c.cv.SetFillStyle("#ffffff")
	c.cv.FillRect(0, 0, vw, vh)

	g := c.cv.CreateLinearGradient(k.x0, k.y0, k.x1, k.y1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, css(s.Color))
	}
	c.cv.SetFillStyle(g)
	c.cv.FillRect(0, 0, vw, vh)

	if c.noise == nil {
		return
	}
	img := c.backend.Image
	for py := 0; py < k.h; py++ {
		for px := 0; px < k.w; px++ {
			x, y := (float64(px)+0.5)/c.sx, (float64(py)+0.5)/c.sy
			shift := c.noise.Noise2D(x*0.05, y*0.05) * c.grain * 255
			i := img.PixOffset(px, py)
			img.Pix[i] = shade(img.Pix[i], shift)
			img.Pix[i+1] = shade(img.Pix[i+1], shift)
			img.Pix[i+2] = shade(img.Pix[i+2], shift)
		}
	}
}

// FillRadialGradient implements surface.Surface.
func (c *Canvas) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	g := c.cv.CreateRadialGradient(cx, cy, 0, cx, cy, r)
	g.AddColorStop(0, css(inner))
	g.AddColorStop(1, css(outer))
	c.cv.SetFillStyle(g)
	c.cv.BeginPath()
	c.cv.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.cv.Fill()
}

// FillCircle implements surface.Surface.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}
	c.cv.SetFillStyle(css(col))
	c.cv.BeginPath()
	c.cv.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.cv.Fill()
}

// StrokeLine implements surface.Surface. Lines thinner than a pixel are
// widened to one pixel so they survive coarse scales.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA, dash []float64) {
	if col.A == 0 {
		return
	}
	c.cv.SetStrokeStyle(css(col))
	c.cv.SetLineWidth(math.Max(width, c.unit()))
	c.cv.SetLineDash(dash)
	c.cv.BeginPath()
	c.cv.MoveTo(x0, y0)
	c.cv.LineTo(x1, y1)
	c.cv.Stroke()
	c.cv.SetLineDash(nil)
}

// RoundRect implements surface.Surface.
func (c *Canvas) RoundRect(x, y, w, h, radius float64, fill, stroke color.NRGBA, strokeWidth float64) {
	r := math.Min(radius, math.Min(w, h)/2)
	c.cv.BeginPath()
	c.cv.MoveTo(x+r, y)
	c.cv.ArcTo(x+w, y, x+w, y+h, r)
	c.cv.ArcTo(x+w, y+h, x, y+h, r)
	c.cv.ArcTo(x, y+h, x, y, r)
	c.cv.ArcTo(x, y, x+w, y, r)
	c.cv.ClosePath()

	if fill.A > 0 {
		c.cv.SetFillStyle(css(fill))
		c.cv.Fill()
	}
	if strokeWidth > 0 && stroke.A > 0 {
		c.cv.SetStrokeStyle(css(stroke))
		c.cv.SetLineWidth(strokeWidth)
		c.cv.Stroke()
	}
}

// unit is the size of one pixel in viewport units.
func (c *Canvas) unit() float64 {
	return 1 / math.Min(c.sx, c.sy)
}

// css formats col the way the canvas parses fill and stroke styles.
func css(col color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.4f)", col.R, col.G, col.B, float64(col.A)/255)
}

func shade(v uint8, shift float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, float64(v)+shift))))
}
