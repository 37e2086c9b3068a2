package display

import "github.com/olivierh59500/neural-field-go/internal/network"

// pointerAt maps a cursor position to the field. The cursor counts as gone
// when the window is unfocused or the cursor lies outside the viewport.
func pointerAt(x, y int, width, height float64, focused bool) (network.Point, bool) {
	px, py := float64(x), float64(y)
	if !focused || px < 0 || py < 0 || px >= width || py >= height {
		return network.Absent, false
	}
	return network.Point{X: px, Y: py}, true
}

type focusAction int

const (
	actionNone focusAction = iota
	actionPause
	actionResume
)

// focusTracker turns focus changes and the pause key into loop actions.
// A pause requested by the user outlives focus changes.
type focusTracker struct {
	focused    bool
	userPaused bool
	pending    focusAction
}

// observe records the current focus state and returns what the loop should do.
func (f *focusTracker) observe(focused bool) focusAction {
	act := f.pending
	f.pending = actionNone
	if focused != f.focused {
		f.focused = focused
		if !focused {
			act = actionPause
		} else if !f.userPaused {
			act = actionResume
		}
	}
	return act
}

// toggleUser flips the user pause; the action is reported by the next observe.
func (f *focusTracker) toggleUser() {
	f.userPaused = !f.userPaused
	switch {
	case f.userPaused:
		f.pending = actionPause
	case f.focused:
		f.pending = actionResume
	default:
		f.pending = actionNone
	}
}
