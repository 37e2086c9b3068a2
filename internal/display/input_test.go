package display

import (
	"testing"

	"github.com/olivierh59500/neural-field-go/internal/network"
)

func TestPointerAt(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		focused bool
		want    network.Point
		ok      bool
	}{
		{"inside", 10, 20, true, network.Point{X: 10, Y: 20}, true},
		{"unfocused", 10, 20, false, network.Absent, false},
		{"left of window", -1, 20, true, network.Absent, false},
		{"right edge", 800, 20, true, network.Absent, false},
		{"bottom edge", 10, 600, true, network.Absent, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pointerAt(tt.x, tt.y, 800, 600, tt.focused)
			if got != tt.want || ok != tt.ok {
				t.Errorf("pointerAt = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFocusTracker(t *testing.T) {
	f := focusTracker{focused: true}

	if act := f.observe(true); act != actionNone {
		t.Errorf("steady focus = %v, want none", act)
	}
	if act := f.observe(false); act != actionPause {
		t.Errorf("focus lost = %v, want pause", act)
	}
	if act := f.observe(false); act != actionNone {
		t.Errorf("still unfocused = %v, want none", act)
	}
	if act := f.observe(true); act != actionResume {
		t.Errorf("focus regained = %v, want resume", act)
	}
}

func TestFocusTrackerUserPause(t *testing.T) {
	f := focusTracker{focused: true}

	f.toggleUser()
	if act := f.observe(true); act != actionPause {
		t.Fatalf("user pause = %v, want pause", act)
	}

	f.observe(false)
	if act := f.observe(true); act != actionNone {
		t.Errorf("refocus during user pause = %v, want none", act)
	}

	f.toggleUser()
	if act := f.observe(true); act != actionResume {
		t.Errorf("user unpause = %v, want resume", act)
	}
}

func TestDashes(t *testing.T) {
	segs := dashes(0, 0, 22, 0, []float64{5, 5})
	want := [][4]float64{{0, 0, 5, 0}, {10, 0, 15, 0}, {20, 0, 22, 0}}
	if len(segs) != len(want) {
		t.Fatalf("dashes = %v, want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, segs[i], want[i])
		}
	}

	solid := dashes(1, 2, 3, 4, nil)
	if len(solid) != 1 || solid[0] != [4]float64{1, 2, 3, 4} {
		t.Errorf("solid = %v, want the whole segment", solid)
	}
}
