package network

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/olivierh59500/neural-field-go/internal/surface/mocks"
)

func TestNearestPicksClosest(t *testing.T) {
	f := emptyField(800, 600)
	far := fixedNode(490, 300)
	near := fixedNode(410, 300)
	mid := fixedNode(400, 350)
	f.Nodes = []*Node{far, mid, near}

	got, d := f.Nearest(400, 300, GrabRadius)
	if got != near {
		t.Fatalf("Nearest = %+v, want the node 10 away", got)
	}
	if d != 10 {
		t.Errorf("distance = %f, want 10", d)
	}
}

func TestNearestOutOfRange(t *testing.T) {
	f := emptyField(800, 600)
	f.Nodes = []*Node{fixedNode(485, 300)}

	if got, _ := f.Nearest(400, 300, GrabRadius); got != nil {
		t.Errorf("Nearest = %+v, want nil for a node 85 away", got)
	}
}

func TestNearestTieGoesToFirst(t *testing.T) {
	f := emptyField(800, 600)
	first := fixedNode(420, 300)
	second := fixedNode(380, 300)
	f.Nodes = []*Node{first, second}

	if got, _ := f.Nearest(400, 300, GrabRadius); got != first {
		t.Errorf("Nearest picked the later of two equidistant nodes")
	}
}

func TestPointerAbsentNoFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	f := emptyField(800, 600)
	f.Nodes = []*Node{fixedNode(400, 300), fixedNode(10, 10)}
	f.ClearPointer()

	s.EXPECT().FillLinearGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	s.EXPECT().FillRadialGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// No StrokeLine or RoundRect: no hand and no grab line.

	f.Draw(s)

	for i, n := range f.Nodes {
		if n.Energy != 0.5 {
			t.Errorf("node %d energy = %f, want untouched 0.5", i, n.Energy)
		}
	}
}

func TestPointerGrabsNearest(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	f := emptyField(800, 600)
	near := fixedNode(400, 340)
	other := fixedNode(400, 250)
	f.Nodes = []*Node{other, near}
	f.SetPointer(400, 300)

	s.EXPECT().FillLinearGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	s.EXPECT().FillRadialGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// palm, four fingers, thumb
	s.EXPECT().RoundRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), HandFill, HandStroke, 2.0).Times(6)
	// two joint lines per finger
	s.EXPECT().StrokeLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1.0, HandJoint, gomock.Nil()).Times(8)
	s.EXPECT().StrokeLine(400.0, 300.0, 400.0, 340.0, 3.0, gomock.Any(), gomock.Eq(GrabDash)).Times(1)

	f.Draw(s)

	if near.Energy != 0.6 {
		t.Errorf("grabbed node energy = %f, want 0.5 + 0.1", near.Energy)
	}
	if other.Energy != 0.5 {
		t.Errorf("other node energy = %f, want untouched", other.Energy)
	}
}

func TestPointerGrabOutOfReach(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	f := emptyField(800, 600)
	lone := fixedNode(485, 300)
	f.Nodes = []*Node{lone}
	f.SetPointer(400, 300)

	s.EXPECT().FillLinearGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	s.EXPECT().FillRadialGradient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().RoundRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(6)
	s.EXPECT().StrokeLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).Times(8)

	f.Draw(s)

	if lone.Energy != 0.5 {
		t.Errorf("energy = %f, want untouched when nothing is within reach", lone.Energy)
	}
}

func TestGrabBoostCapped(t *testing.T) {
	f := emptyField(800, 600)
	n := fixedNode(400, 310)
	n.Energy = 0.95
	f.Nodes = []*Node{n}
	f.SetPointer(400, 300)

	f.Draw(nopSurface{})
	if n.Energy != 1 {
		t.Errorf("energy = %f, want capped at 1", n.Energy)
	}
}
