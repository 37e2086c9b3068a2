package network

import (
	"math"
	"math/rand"
	"time"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// Connection constants
const (
	StrengthScale        = 0.6
	PacketCooldownMin    = 2000 * time.Millisecond
	PacketCooldownJitter = 3000 * time.Millisecond
	PacketFadeStart      = 0.8  // progress after which packets fade
	PacketFadeStep       = 0.05 // opacity lost per tick while fading
	DrawCullLength       = 150.0
	LengthFalloff        = 200.0
)

// Packet is a pulse travelling from A to B.
type Packet struct {
	Progress float64 // [0, 1] along A->B
	Speed    float64
	Size     float64
	Opacity  float64
}

// Connection links two nodes and carries packets between them.
type Connection struct {
	A, B       *Node
	Strength   float64
	Phase      float64
	PulseSpeed float64
	Packets    []Packet
	LastEmit   time.Time
}

func newConnection(a, b *Node, rng *rand.Rand) *Connection {
	return &Connection{
		A:          a,
		B:          b,
		Strength:   rng.Float64()*0.5 + 0.3,
		Phase:      rng.Float64() * math.Pi * 2,
		PulseSpeed: rng.Float64()*0.05 + 0.02,
	}
}

// Update pulses the connection, derives its strength from the endpoints,
// emits a packet when the cooldown has elapsed and advances packets in flight.
func (c *Connection) Update(now time.Time, rng *rand.Rand) {
	c.Phase += c.PulseSpeed
	c.Strength = (c.A.Energy + c.B.Energy) / 2 * StrengthScale

	cooldown := PacketCooldownMin + time.Duration(rng.Float64()*float64(PacketCooldownJitter))
	if now.Sub(c.LastEmit) > cooldown {
		c.Packets = append(c.Packets, Packet{
			Progress: 0,
			Speed:    0.01 + rng.Float64()*0.02,
			Size:     rng.Float64()*3 + 2,
			Opacity:  1,
		})
		c.LastEmit = now
	}

	kept := c.Packets[:0]
	for _, p := range c.Packets {
		p.Progress += p.Speed
		if p.Progress > PacketFadeStart {
			p.Opacity -= PacketFadeStep
		}
		if p.Progress < 1 && p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	c.Packets = kept
}

// Length is the current distance between the endpoints.
func (c *Connection) Length() float64 {
	return c.A.distanceTo(c.B.X, c.B.Y)
}

// Draw renders the edge and its packets. Edges longer than DrawCullLength
// are not drawn at all.
func (c *Connection) Draw(s surface.Surface) {
	d := c.Length()
	if d > DrawCullLength {
		return
	}

	pulse := math.Sin(c.Phase)*0.3 + 0.7
	opacity := c.Strength * pulse * (1 - d/LengthFalloff)
	s.StrokeLine(c.A.X, c.A.Y, c.B.X, c.B.Y, 1+c.Strength*2,
		surface.RGBA(LinkColor.R, LinkColor.G, LinkColor.B, opacity*0.6), nil)

	for _, p := range c.Packets {
		x := c.A.X + (c.B.X-c.A.X)*p.Progress
		y := c.A.Y + (c.B.Y-c.A.Y)*p.Progress
		s.FillCircle(x, y, p.Size, surface.RGBA(PacketColor.R, PacketColor.G, PacketColor.B, p.Opacity*0.9))
		s.FillRadialGradient(x, y, p.Size*3,
			surface.RGBA(LinkColor.R, LinkColor.G, LinkColor.B, p.Opacity*0.3),
			surface.RGBA(LinkColor.R, LinkColor.G, LinkColor.B, 0))
	}
}
