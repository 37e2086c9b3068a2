package display

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/neural-field-go/internal/raster"
	"github.com/olivierh59500/neural-field-go/internal/surface"
)

const glowSize = 64 // glow sprite resolution

// Surface implements surface.Surface on an ebiten image. Bind it to the
// screen at the start of every Draw.
type Surface struct {
	dst *ebiten.Image

	grain float64
	seed  int64

	glow *ebiten.Image

	backdrop      *ebiten.Image
	backdropKey   [4]float64
	backdropSize  image.Point
	backdropStops []surface.Stop

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a surface whose background gradient carries perlin
// grain of the given amplitude.
func NewSurface(grain float64, seed int64) *Surface {
	return &Surface{grain: grain, seed: seed}
}

// Bind sets the image the next draw calls target.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

// FillLinearGradient implements surface.Surface. The gradient is rasterised
// once per geometry and reused as a texture.
func (s *Surface) FillLinearGradient(x0, y0, x1, y1 float64, stops []surface.Stop) {
	size := s.dst.Bounds().Size()
	key := [4]float64{x0, y0, x1, y1}
	if s.backdrop == nil || s.backdropKey != key || s.backdropSize != size || !slices.Equal(s.backdropStops, stops) {
		if s.backdrop != nil {
			s.backdrop.Deallocate()
		}
		c := raster.New(size.X, size.Y, 1, 1, raster.WithGrain(s.grain, s.seed))
		c.FillLinearGradient(x0, y0, x1, y1, stops)
		s.backdrop = ebiten.NewImageFromImage(c.Image())
		s.backdropKey = key
		s.backdropSize = size
		s.backdropStops = slices.Clone(stops)
	}
	s.dst.Clear()
	s.dst.DrawImage(s.backdrop, nil)
}

// FillRadialGradient implements surface.Surface by stretching a prebuilt
// falloff sprite tinted with inner. A visible outer colour is laid down
// first as a flat disc.
func (s *Surface) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	if outer.A > 0 {
		s.FillCircle(cx, cy, r, outer)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r/glowSize, 2*r/glowSize)
	op.GeoM.Translate(cx-r, cy-r)
	op.ColorScale.ScaleWithColor(inner)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.glowSprite(), op)
}

// FillCircle implements surface.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeLine implements surface.Surface.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, dash []float64) {
	if c.A == 0 {
		return
	}
	for _, seg := range dashes(x0, y0, x1, y1, dash) {
		vector.StrokeLine(s.dst, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), float32(width), c, true)
	}
}

// RoundRect implements surface.Surface.
func (s *Surface) RoundRect(x, y, w, h, radius float64, fill, stroke color.NRGBA, strokeWidth float64) {
	radius = math.Min(radius, math.Min(w, h)/2)
	s.path = vector.Path{}
	x0, y0, x1, y1, r := float32(x), float32(y), float32(x+w), float32(y+h), float32(radius)
	s.path.MoveTo(x0+r, y0)
	s.path.LineTo(x1-r, y0)
	s.path.ArcTo(x1, y0, x1, y0+r, r)
	s.path.LineTo(x1, y1-r)
	s.path.ArcTo(x1, y1, x1-r, y1, r)
	s.path.LineTo(x0+r, y1)
	s.path.ArcTo(x0, y1, x0, y1-r, r)
	s.path.LineTo(x0, y0+r)
	s.path.ArcTo(x0, y0, x0+r, y0, r)
	s.path.Close()

	if fill.A > 0 {
		s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
		s.drawPath(fill)
	}
	if strokeWidth > 0 && stroke.A > 0 {
		s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
			Width:    float32(strokeWidth),
			LineJoin: vector.LineJoinRound,
		})
		s.drawPath(stroke)
	}
}

func (s *Surface) drawPath(c color.NRGBA) {
	a := float32(c.A) / 0xff
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R) / 0xff * a
		v.ColorG = float32(c.G) / 0xff * a
		v.ColorB = float32(c.B) / 0xff * a
		v.ColorA = a
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// glowSprite is a white disc whose alpha falls linearly from 1 at the
// centre to 0 at the rim, premultiplied.
func (s *Surface) glowSprite() *ebiten.Image {
	if s.glow != nil {
		return s.glow
	}
	img := image.NewRGBA(image.Rect(0, 0, glowSize, glowSize))
	half := float64(glowSize) / 2
	for y := 0; y < glowSize; y++ {
		for x := 0; x < glowSize; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			a := uint8(math.Round(surface.Clamp01(1-d) * 0xff))
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	s.glow = ebiten.NewImageFromImage(img)
	return s.glow
}

var white *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return white
}

// dashes splits a segment into its visible pieces. A nil or zero-length
// pattern yields the whole segment.
func dashes(x0, y0, x1, y1 float64, dash []float64) [][4]float64 {
	period := 0.0
	for _, d := range dash {
		period += d
	}
	length := math.Hypot(x1-x0, y1-y0)
	if period <= 0 || length == 0 {
		return [][4]float64{{x0, y0, x1, y1}}
	}

	ux, uy := (x1-x0)/length, (y1-y0)/length
	var out [][4]float64
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		end := math.Min(pos+d, length)
		if i%2 == 0 && end > pos {
			out = append(out, [4]float64{x0 + ux*pos, y0 + uy*pos, x0 + ux*end, y0 + uy*end})
		}
		pos += d
	}
	return out
}
