// Package network simulates the animated neural-network field: drifting nodes,
// the connections between them, and the pointer overlay that feeds energy back
// into the nearest node.
package network

import (
	"math/rand"

	"github.com/olivierh59500/neural-field-go/internal/config"
	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// Field owns every node and connection plus the pointer and viewport.
type Field struct {
	Width, Height float64
	Nodes         []*Node
	Connections   []*Connection
	Pointer       Point

	policy config.ResizePolicy
	rng    *rand.Rand
	clock  Clock
}

// Stats summarises the field for logging.
type Stats struct {
	Nodes       int
	Connections int
	Packets     int
	MeanEnergy  float64
}

// NewField scatters cfg.Nodes nodes over a width x height viewport and links
// each pair closer than cfg.LinkDistance with probability cfg.LinkProbability.
// The same rng seed always yields the same graph.
func NewField(width, height float64, cfg config.Field, rng *rand.Rand, clock Clock) *Field {
	f := &Field{
		Width:   width,
		Height:  height,
		Pointer: Absent,
		policy:  cfg.ResizePolicy,
		rng:     rng,
		clock:   clock,
	}

	f.Nodes = make([]*Node, cfg.Nodes)
	for i := range f.Nodes {
		f.Nodes[i] = newNode(rng.Float64()*width, rng.Float64()*height, rng)
	}

	for i := 0; i < len(f.Nodes); i++ {
		for j := i + 1; j < len(f.Nodes); j++ {
			a, b := f.Nodes[i], f.Nodes[j]
			if a.distanceTo(b.X, b.Y) < cfg.LinkDistance && rng.Float64() < cfg.LinkProbability {
				f.Connections = append(f.Connections, newConnection(a, b, rng))
			}
		}
	}

	return f
}

// Tick advances connections, then nodes. Connections therefore see the
// energies left by the previous frame, pointer feedback included.
func (f *Field) Tick() {
	now := f.clock.Now()
	for _, c := range f.Connections {
		c.Update(now, f.rng)
	}
	for _, n := range f.Nodes {
		n.Update(f.Width, f.Height, f.Pointer)
	}
}

// Draw renders background, connections, nodes and the pointer overlay.
func (f *Field) Draw(s surface.Surface) {
	s.FillLinearGradient(0, 0, f.Width, f.Height, Background)
	for _, c := range f.Connections {
		c.Draw(s)
	}
	for _, n := range f.Nodes {
		n.Draw(s)
	}
	if f.PointerInside() {
		f.drawPointer(s)
	}
}

// Frame is one tick followed by one redraw.
func (f *Field) Frame(s surface.Surface) {
	f.Tick()
	f.Draw(s)
}

// SetPointer records the pointer position in viewport pixels.
func (f *Field) SetPointer(x, y float64) {
	f.Pointer = Point{X: x, Y: y}
}

// ClearPointer marks the pointer as gone.
func (f *Field) ClearPointer() {
	f.Pointer = Absent
}

// Resize changes the viewport. With config.ResizeScale, homes are rescaled
// to the new size; current positions are left for the tether to settle.
func (f *Field) Resize(width, height float64) {
	if width == f.Width && height == f.Height {
		return
	}
	if f.policy == config.ResizeScale && f.Width > 0 && f.Height > 0 {
		sx, sy := width/f.Width, height/f.Height
		for _, n := range f.Nodes {
			n.HomeX *= sx
			n.HomeY *= sy
		}
	}
	f.Width, f.Height = width, height
}

// Stats counts what is currently alive in the field.
func (f *Field) Stats() Stats {
	st := Stats{Nodes: len(f.Nodes), Connections: len(f.Connections)}
	for _, c := range f.Connections {
		st.Packets += len(c.Packets)
	}
	if len(f.Nodes) > 0 {
		var sum float64
		for _, n := range f.Nodes {
			sum += n.Energy
		}
		st.MeanEnergy = sum / float64(len(f.Nodes))
	}
	return st
}
