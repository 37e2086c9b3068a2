package network

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/olivierh59500/neural-field-go/internal/surface/mocks"
)

func testConnection(ax, ay, bx, by float64) *Connection {
	return newConnection(fixedNode(ax, ay), fixedNode(bx, by), rand.New(rand.NewSource(1)))
}

func TestConnectionStrengthFollowsEnergy(t *testing.T) {
	c := testConnection(0, 0, 50, 0)
	c.A.Energy = 0.4
	c.B.Energy = 1
	rng := rand.New(rand.NewSource(1))

	c.Update(testEpoch, rng)
	if math.Abs(c.Strength-0.42) > 1e-12 {
		t.Errorf("Strength = %f, want (0.4+1)/2*0.6 = 0.42", c.Strength)
	}
}

func TestConnectionFirstUpdateEmits(t *testing.T) {
	c := testConnection(0, 0, 50, 0)
	rng := rand.New(rand.NewSource(1))

	c.Update(testEpoch, rng)
	if len(c.Packets) != 1 {
		t.Fatalf("len(Packets) = %d, want 1 on first update", len(c.Packets))
	}
	p := c.Packets[0]
	if p.Speed < 0.01 || p.Speed >= 0.03 {
		t.Errorf("Speed = %f, want [0.01, 0.03)", p.Speed)
	}
	if p.Size < 2 || p.Size >= 5 {
		t.Errorf("Size = %f, want [2, 5)", p.Size)
	}
	if p.Progress != p.Speed {
		t.Errorf("Progress = %f, want advanced once to %f", p.Progress, p.Speed)
	}
	if p.Opacity != 1 {
		t.Errorf("Opacity = %f, want 1", p.Opacity)
	}
	if !c.LastEmit.Equal(testEpoch) {
		t.Errorf("LastEmit = %v, want %v", c.LastEmit, testEpoch)
	}
}

func TestConnectionCooldown(t *testing.T) {
	c := testConnection(0, 0, 50, 0)
	rng := rand.New(rand.NewSource(1))

	c.Update(testEpoch, rng)
	c.Update(testEpoch.Add(1999*time.Millisecond), rng)
	if len(c.Packets) != 1 {
		t.Fatalf("len(Packets) = %d before the 2s floor, want 1", len(c.Packets))
	}

	c.Update(testEpoch.Add(5001*time.Millisecond), rng)
	if len(c.Packets) != 2 {
		t.Fatalf("len(Packets) = %d after the 5s ceiling, want 2", len(c.Packets))
	}
	if !c.LastEmit.Equal(testEpoch.Add(5001 * time.Millisecond)) {
		t.Errorf("LastEmit = %v, want reset to the emission time", c.LastEmit)
	}
}

func TestPacketLifecycle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := testConnection(0, 0, 100, 0)
		speed := rapid.Float64Range(0.01, 0.03).Draw(t, "speed")
		c.Packets = []Packet{{Speed: speed, Size: 3, Opacity: 1}}
		c.LastEmit = testEpoch // holds back new emissions
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))

		prev := 0.0
		for tick := 0; tick < 200 && len(c.Packets) > 0; tick++ {
			c.Update(testEpoch, rng)
			if len(c.Packets) == 0 {
				break
			}
			p := c.Packets[0]
			if p.Progress < prev {
				t.Fatalf("tick %d: progress went back from %f to %f", tick, prev, p.Progress)
			}
			if p.Progress >= 1 || p.Opacity <= 0 {
				t.Fatalf("tick %d: retained packet %+v", tick, p)
			}
			if p.Progress <= PacketFadeStart && p.Opacity != 1 {
				t.Fatalf("tick %d: opacity %f dropped before fade start", tick, p.Opacity)
			}
			prev = p.Progress
		}
		if len(c.Packets) != 0 {
			t.Fatalf("packet still alive after 200 ticks: %+v", c.Packets[0])
		}
	})
}

func TestConnectionDrawCulled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl) // no expectations: any call fails

	c := testConnection(0, 0, 151, 0)
	c.Packets = []Packet{{Progress: 0.5, Speed: 0.02, Size: 3, Opacity: 1}}
	c.Draw(s)
}

func TestConnectionDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	c := testConnection(0, 0, 100, 0)
	c.Strength = 0.5
	c.Packets = []Packet{
		{Progress: 0.25, Speed: 0.02, Size: 3, Opacity: 1},
		{Progress: 0.9, Speed: 0.02, Size: 2, Opacity: 0.5},
	}

	s.EXPECT().StrokeLine(0.0, 0.0, 100.0, 0.0, 2.0, gomock.Any(), gomock.Nil()).Times(1)
	s.EXPECT().FillCircle(25.0, 0.0, 3.0, gomock.Any()).Times(1)
	s.EXPECT().FillCircle(90.0, 0.0, 2.0, gomock.Any()).Times(1)
	s.EXPECT().FillRadialGradient(gomock.Any(), 0.0, gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	c.Draw(s)
}
