package network

import (
	"math"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// Pointer overlay constants
const (
	HandSize   = 40.0
	GrabRadius = 80.0 // nearest-node search radius
	GrabBoost  = 0.1  // energy fed into the grabbed node each frame
)

// GrabDash is the on/off pattern of the grab line.
var GrabDash = []float64{5, 5}

// PointerInside reports whether the pointer lies strictly inside the viewport.
func (f *Field) PointerInside() bool {
	p := f.Pointer
	return p.X > 0 && p.Y > 0 && p.X < f.Width && p.Y < f.Height
}

// Nearest returns the node closest to (x, y) among those strictly within
// radius, or nil. Ties go to the earliest node.
func (f *Field) Nearest(x, y, radius float64) (*Node, float64) {
	var closest *Node
	closestDist := math.Inf(1)
	for _, n := range f.Nodes {
		d := n.distanceTo(x, y)
		if d < closestDist && d < radius {
			closestDist = d
			closest = n
		}
	}
	return closest, closestDist
}

// drawPointer draws the hand at the pointer, then links it to the nearest
// node and boosts that node's energy.
func (f *Field) drawPointer(s surface.Surface) {
	x, y := f.Pointer.X, f.Pointer.Y
	drawHand(s, x, y)

	n, d := f.Nearest(x, y, GrabRadius)
	if n == nil {
		return
	}
	s.StrokeLine(x, y, n.X, n.Y, 3, surface.RGBA(GrabColor.R, GrabColor.G, GrabColor.B, 1-d/GrabRadius), GrabDash)
	n.Boost(GrabBoost)
}

// drawHand draws the robotic hand: palm, four jointed fingers and a thumb.
func drawHand(s surface.Surface, x, y float64) {
	s.RoundRect(x-HandSize/2, y-HandSize/3, HandSize, HandSize*2/3, 5, HandFill, HandStroke, 2)

	for i := 0; i < 4; i++ {
		fx := x - HandSize/2 + float64(i+1)*HandSize/5
		fy := y - HandSize/3

		s.RoundRect(fx-3, fy-15, 6, 15, 3, HandFill, HandStroke, 2)
		s.StrokeLine(fx-2, fy-5, fx+2, fy-5, 1, HandJoint, nil)
		s.StrokeLine(fx-2, fy-10, fx+2, fy-10, 1, HandJoint, nil)
	}

	// Thumb
	s.RoundRect(x-HandSize/2-8, y-5, 12, 8, 3, HandFill, HandStroke, 2)
}
