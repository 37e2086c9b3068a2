package network

import (
	"math"
	"math/rand"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// Node constants
const (
	PhaseStep       = 0.02  // phase advance per tick
	EnergyBase      = 0.7   // energy = EnergyBase + EnergySwing*sin(phase)
	EnergySwing     = 0.3
	RepelRadius     = 100.0 // pointer proximity radius
	RepelPush       = 2.0   // displacement at zero distance
	RepelEnergyGain = 0.5   // energy gain per unit of repel force
	TetherRadius    = 50.0  // displacement from home before the tether engages
	TetherPull      = 0.02  // acceleration toward home per tick
	Damping         = 0.98  // velocity decay per tick
)

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Absent is the pointer sentinel: far enough off-canvas that no node reacts.
var Absent = Point{X: -1000, Y: -1000}

// Node is a drifting, pulsing point tethered to its home position.
type Node struct {
	X, Y                 float64 // Position
	HomeX, HomeY         float64 // Position at creation
	VX, VY               float64 // Velocity
	Radius               float64 // Display radius, between MinRadius and MaxRadius
	MinRadius, MaxRadius float64
	Opacity              float64
	Phase                float64 // Drives the energy pulse
	Energy               float64 // [0, 1]
}

func newNode(x, y float64, rng *rand.Rand) *Node {
	n := &Node{
		X:       x,
		Y:       y,
		HomeX:   x,
		HomeY:   y,
		VX:      (rng.Float64() - 0.5) * 0.5,
		VY:      (rng.Float64() - 0.5) * 0.5,
		Radius:  rng.Float64()*3 + 2,
		Opacity: rng.Float64()*0.5 + 0.5,
		Phase:   rng.Float64() * math.Pi * 2,
		Energy:  rng.Float64(),
	}
	n.MaxRadius = n.Radius * 2
	n.MinRadius = n.Radius * 0.5
	return n
}

// Update advances the node by one tick inside a width x height viewport,
// reacting to the pointer at p.
func (n *Node) Update(width, height float64, p Point) {
	n.X += n.VX
	n.Y += n.VY

	// Bounce off the walls; position itself is left alone
	if n.X <= 0 || n.X >= width {
		n.VX *= -1
	}
	if n.Y <= 0 || n.Y >= height {
		n.VY *= -1
	}

	n.Phase += PhaseStep
	n.Energy = math.Sin(n.Phase)*EnergySwing + EnergyBase
	n.Radius = n.MinRadius + (n.MaxRadius-n.MinRadius)*n.Energy

	if d := math.Hypot(n.X-p.X, n.Y-p.Y); d < RepelRadius {
		force := (RepelRadius - d) / RepelRadius
		angle := math.Atan2(n.Y-p.Y, n.X-p.X)
		n.X += math.Cos(angle) * force * RepelPush
		n.Y += math.Sin(angle) * force * RepelPush
		n.Boost(force * RepelEnergyGain)
	}

	if math.Hypot(n.X-n.HomeX, n.Y-n.HomeY) > TetherRadius {
		angle := math.Atan2(n.HomeY-n.Y, n.HomeX-n.X)
		n.VX += math.Cos(angle) * TetherPull
		n.VY += math.Sin(angle) * TetherPull
	}

	n.VX *= Damping
	n.VY *= Damping
}

// Boost raises energy by amount, capped at 1.
func (n *Node) Boost(amount float64) {
	n.Energy = math.Min(1, n.Energy+amount)
}

// Draw renders the glow, the body and the highlight.
func (n *Node) Draw(s surface.Surface) {
	s.FillRadialGradient(n.X, n.Y, n.Radius*3,
		surface.RGBA(NodeColor.R, NodeColor.G, NodeColor.B, n.Energy*0.3),
		surface.RGBA(NodeColor.R, NodeColor.G, NodeColor.B, 0))
	s.FillCircle(n.X, n.Y, n.Radius, surface.RGBA(NodeColor.R, NodeColor.G, NodeColor.B, n.Energy*0.8))
	s.FillCircle(n.X-n.Radius*0.3, n.Y-n.Radius*0.3, n.Radius*0.3, surface.RGBA(255, 255, 255, n.Energy*0.6))
}

func (n *Node) distanceTo(x, y float64) float64 {
	return math.Hypot(n.X-x, n.Y-y)
}
