package network

import (
	"errors"
	"log/slog"
	"time"

	"github.com/olivierh59500/neural-field-go/internal/surface"
)

// FrameInterval is one display refresh at 60Hz.
const FrameInterval = time.Second / 60

// ErrNoSurface is returned when a loop is started without a usable viewport.
var ErrNoSurface = errors.New("network: no drawable surface")

// Scheduler runs fn once at the next display refresh. The returned cancel
// drops fn if it has not run yet.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// FrameScheduler holds at most one pending callback. The host calls Flush
// once per display frame from its render goroutine.
type FrameScheduler struct {
	pending func()
	seq     uint64
}

// Schedule replaces any pending callback with fn.
func (s *FrameScheduler) Schedule(fn func()) func() {
	s.seq++
	id := s.seq
	s.pending = fn
	return func() {
		if s.seq == id {
			s.pending = nil
		}
	}
}

// Pending reports whether a callback is waiting for the next frame.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Flush runs the pending callback, if any, and reports whether one ran.
func (s *FrameScheduler) Flush() bool {
	fn := s.pending
	s.pending = nil
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Loop drives a field: each scheduled frame ticks and redraws it, then
// schedules the next one until paused.
type Loop struct {
	field   *Field
	target  surface.Surface
	sched   Scheduler
	logger  *slog.Logger
	running bool
	cancel  func()
	frames  uint64
}

// NewLoop wires a field to the surface it draws on and the scheduler pacing it.
func NewLoop(field *Field, target surface.Surface, sched Scheduler, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{field: field, target: target, sched: sched, logger: logger}
}

// Run starts the loop. It fails with ErrNoSurface if there is nothing to draw
// on, in which case no frame is ever scheduled.
func (l *Loop) Run() error {
	if !l.drawable() {
		return ErrNoSurface
	}
	if l.running {
		return nil
	}
	l.running = true
	l.schedule()
	l.logger.Debug("loop started", "nodes", len(l.field.Nodes), "connections", len(l.field.Connections))
	return nil
}

// Pause stops scheduling frames. Field state is untouched.
func (l *Loop) Pause() {
	if !l.running {
		return
	}
	l.running = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.logger.Debug("loop paused", "frames", l.frames)
}

// Resume continues from the current field state.
func (l *Loop) Resume() {
	if l.running || !l.drawable() {
		return
	}
	l.running = true
	l.schedule()
	l.logger.Debug("loop resumed", "frames", l.frames)
}

// Step runs one frame synchronously, whether or not the loop is running.
func (l *Loop) Step() {
	l.field.Frame(l.target)
	l.frames++
}

// Running reports whether frames are being scheduled.
func (l *Loop) Running() bool { return l.running }

// Frames is the number of frames rendered so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Field returns the driven field.
func (l *Loop) Field() *Field { return l.field }

func (l *Loop) drawable() bool {
	return l.target != nil && l.field != nil && l.field.Width > 0 && l.field.Height > 0
}

func (l *Loop) schedule() {
	l.cancel = l.sched.Schedule(l.frame)
}

func (l *Loop) frame() {
	l.cancel = nil
	l.Step()
	if l.running {
		l.schedule()
	}
}
