// Package seek implements a circular seek control: a value in [0, Max] shown
// as a position on an arc and set by dragging a pointer around it.
//
// Dragging is direction aware. Sweeping past either end of an open arc locks
// the value at that end until the pointer is pulled back onto the arc or far
// enough away, so fast gestures reliably reach 0 and Max.
//
// A Seekbar is driven from a single goroutine, normally the one delivering
// input events, and is not safe for concurrent use.
package seek

import (
	"errors"

	"dasa.cc/seekarc/ring"
)

// Config is the initial configuration of a Seekbar.
type Config struct {
	StartAngle, EndAngle float64 // geometric degrees
	Max                  int
	Value                int

	// MoveOutside lets a drag continue changing the value after the pointer
	// leaves the ring's touch band.
	MoveOutside bool

	// Tuning defaults to DefaultTuning when zero.
	Tuning Tuning
}

// Seekbar is a circular seek control.
type Seekbar struct {
	rng        Range
	start, end float64 // as configured, before normalizing
	drag       tracker
	ring       ring.Ring
	listener   Listener

	dirty bool
	frame Frame
}

// Option configures a Seekbar.
type Option func(*Seekbar)

// WithRing sets the measured ring; presses are admitted within its touch band.
func WithRing(r ring.Ring) Option { return func(s *Seekbar) { s.SetRing(r) } }

// WithBand overrides the radii admitting presses.
func WithBand(b ring.Band) Option { return func(s *Seekbar) { s.drag.band = b } }

// WithListener sets the change listener.
func WithListener(l Listener) Option { return func(s *Seekbar) { s.listener = l } }

// New returns a Seekbar for cfg. Until a ring is set, presses at any radius
// are admitted.
func New(cfg Config, opts ...Option) (*Seekbar, error) {
	s := &Seekbar{
		start: cfg.StartAngle,
		end:   cfg.EndAngle,
		drag: tracker{
			tune:        cfg.Tuning,
			band:        ring.Unbounded,
			moveOutside: cfg.MoveOutside,
		},
		dirty: true,
	}
	if s.drag.tune == (Tuning{}) {
		s.drag.tune = DefaultTuning
	}
	if err := s.rng.Configure(cfg.StartAngle, cfg.EndAngle, cfg.Max); err != nil {
		return nil, err
	}
	s.rng.SetValue(cfg.Value)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Value returns the current value, derived from the pointer's angle.
func (s *Seekbar) Value() int { return s.rng.Value() }

// Max returns the largest value.
func (s *Seekbar) Max() int { return s.rng.Max() }

// Range returns the underlying range; it must not be modified.
func (s *Seekbar) Range() *Range { return &s.rng }

// SetValue sets the value, clamped to [0, Max]. Listeners hear of it only if
// the value changed.
func (s *Seekbar) SetValue(v int) {
	if !s.rng.SetValue(v) {
		return
	}
	s.dirty = true
	s.emit(false)
}

// Configure replaces the arc and max. An invalid configuration is rejected
// and the previous one kept. A drag in progress ends without notifying.
func (s *Seekbar) Configure(start, end float64, max int) error {
	prev := s.Value()
	if err := s.rng.Configure(start, end, max); err != nil {
		Logger().Warn("configuration rejected", attrError(err))
		return err
	}
	s.start, s.end = start, end
	s.endDrag()
	s.dirty = true
	if s.Value() != prev {
		s.emit(false)
	}
	return nil
}

// SetMax keeps the arc and replaces max.
func (s *Seekbar) SetMax(max int) error { return s.Configure(s.start, s.end, max) }

// SetRing sets the measured ring and admits presses within its touch band.
func (s *Seekbar) SetRing(r ring.Ring) {
	s.ring = r
	s.drag.band = r.Band()
	s.dirty = true
}

// SetMoveOutside sets whether a drag may continue outside the touch band.
func (s *Seekbar) SetMoveOutside(ok bool) { s.drag.moveOutside = ok }

// SetListener replaces the change listener; nil removes it.
func (s *Seekbar) SetListener(l Listener) { s.listener = l }

// Moving reports whether a drag is in progress.
func (s *Seekbar) Moving() bool { return s.drag.active() }

// Handle feeds one pointer sample, x and y relative to the control's center,
// and reports whether it was consumed. Unconsumed events should be passed on
// to whatever lies beneath the control.
func (s *Seekbar) Handle(p Phase, x, y float64) bool {
	out := s.drag.handle(&s.rng, p, x, y)
	if !out.handled {
		if p < PhaseDown || p > PhaseUp {
			Logger().Debug("sample dropped", attrPhase(p), attrError(errBadPhase))
		}
		return false
	}
	s.dirty = true
	if out.notify {
		s.emit(true)
	}
	return true
}

var errBadPhase = errors.New("seek: unknown phase")

// Dirty reports whether the frame changed since Frame was last called.
func (s *Seekbar) Dirty() bool { return s.dirty }

// Frame returns what a renderer needs to draw the control.
func (s *Seekbar) Frame() Frame {
	if s.dirty {
		s.frame = s.computeFrame()
		s.dirty = false
	}
	return s.frame
}

// Snapshot returns the state needed to restore the control later.
func (s *Seekbar) Snapshot() Snapshot { return Snapshot{Max: s.Max(), Value: s.Value()} }

// Restore resets max and value from snap without notifying listeners; a drag
// in progress ends.
func (s *Seekbar) Restore(snap Snapshot) error {
	if err := s.rng.Configure(s.start, s.end, snap.Max); err != nil {
		return err
	}
	s.rng.snap(snap.Value)
	s.endDrag()
	s.dirty = true
	return nil
}

// endDrag drops a gesture in progress; its distances were measured against
// the previous span.
func (s *Seekbar) endDrag() {
	if s.drag.active() {
		Logger().Debug("drag ended by reconfiguration")
		s.drag.g = nil
	}
}

func (s *Seekbar) emit(fromUser bool) {
	v := s.Value()
	Logger().Debug("change", attrValue(v), attrUser(fromUser))
	if s.listener != nil {
		s.listener(Change{Value: v, FromUser: fromUser})
	}
}
