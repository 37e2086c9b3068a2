// Package surface defines the 2D drawing contract the field renders into.
package surface

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

import (
	"image/color"
	"math"
)

// Stop is one colour stop of a linear gradient, Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is a 2D drawing target with pixel coordinates matching the field viewport.
type Surface interface {
	// FillLinearGradient replaces the whole surface with a gradient along the
	// axis (x0,y0)->(x1,y1). It starts every frame.
	FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop)
	// FillRadialGradient fills a disc fading from inner at the centre to outer at r.
	FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	// StrokeLine draws a segment. A nil dash draws it solid, otherwise dash
	// alternates on/off lengths.
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, dash []float64)
	// RoundRect fills and then strokes a rounded rectangle. A zero strokeWidth
	// skips the stroke.
	RoundRect(x, y, w, h, radius float64, fill, stroke color.NRGBA, strokeWidth float64)
}

// RGBA builds a colour from 8-bit channels and a float opacity, the way CSS
// rgba() does. Opacity is clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(Clamp01(a) * 255))}
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp blends two colours channel by channel, t in [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Sample returns the gradient colour at t. Stops must be sorted by Offset.
func Sample(stops []Stop, t float64) color.NRGBA {
	switch len(stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t <= next.Offset {
			span := next.Offset - prev.Offset
			if span <= 0 {
				return next.Color
			}
			return Lerp(prev.Color, next.Color, (t-prev.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// Project returns where (x, y) falls along the axis (x0,y0)->(x1,y1), as a
// fraction clamped to [0, 1].
func Project(x0, y0, x1, y1, x, y float64) float64 {
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return Clamp01(((x-x0)*dx + (y-y0)*dy) / l2)
}
