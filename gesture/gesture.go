// Package gesture filters golang.org/x/mobile input events into pointer
// samples for a seek control, translated so the control's center is the origin.
package gesture

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"dasa.cc/seekarc/seek"
)

type Type uint8

func (t Type) Has(x Type) bool { return t&x == x }

const (
	TypeBegin Type = 1 << iota
	TypeMove
	TypeEnd

	TypeInvalid Type = 0
)

func (t Type) phase() seek.Phase {
	switch t {
	case TypeBegin:
		return seek.PhaseDown
	case TypeMove:
		return seek.PhaseMove
	case TypeEnd:
		return seek.PhaseUp
	}
	return 0
}

// typeFor maps a mouse direction or touch type; wheel steps are invalid.
func typeFor(t interface{}) Type {
	switch t {
	case touch.TypeBegin, mouse.DirPress:
		return TypeBegin
	case touch.TypeEnd, mouse.DirRelease:
		return TypeEnd
	case touch.TypeMove, mouse.DirNone:
		return TypeMove
	default:
		return TypeInvalid
	}
}

// Handler consumes samples relative to a control's center and reports
// whether each was consumed. *seek.Seekbar is a Handler.
type Handler interface {
	Handle(p seek.Phase, x, y float64) bool
}

var _ Handler = (*seek.Seekbar)(nil)

// Event is a pointer sample in window coordinates.
type Event struct {
	X, Y float32
	Type Type
}

// EventFilter follows one pointer at a time: the left mouse button or the
// first touch sequence. Other input passes through untouched.
type EventFilter struct {
	Target Handler

	// OnSize, if set, receives size events after the center is updated.
	OnSize func(size.Event)

	center   f32.Vec2
	tracking bool
	seq      touch.Sequence
}

// Center returns the control's center in window coordinates.
func (f *EventFilter) Center() f32.Vec2 { return f.center }

// Filter consumes e if it belongs to a gesture on the target, returning nil;
// otherwise e is returned for further handling.
func (f *EventFilter) Filter(e interface{}) interface{} {
	var t Event
	switch e := e.(type) {
	case size.Event:
		f.center = f32.Vec2{float32(e.WidthPx) / 2, float32(e.HeightPx) / 2}
		if f.OnSize != nil {
			f.OnSize(e)
		}
		return e
	case mouse.Event:
		if e.Button != mouse.ButtonLeft && e.Direction != mouse.DirNone {
			return e
		}
		t = Event{X: e.X, Y: e.Y, Type: typeFor(e.Direction)}
	case touch.Event:
		if f.tracking && e.Sequence != f.seq {
			return e
		}
		t = Event{X: e.X, Y: e.Y, Type: typeFor(e.Type)}
		if t.Type == TypeBegin {
			f.seq = e.Sequence
		}
	default:
		return e
	}

	if f.handle(t) {
		return nil
	}
	return e
}

func (f *EventFilter) handle(t Event) bool {
	switch t.Type {
	case TypeBegin:
		f.tracking = f.send(t)
		return f.tracking
	case TypeMove:
		// hovering mice move without a press.
		return f.tracking && f.send(t)
	case TypeEnd:
		if !f.tracking {
			return false
		}
		f.tracking = false
		return f.send(t)
	}
	return false
}

func (f *EventFilter) send(t Event) bool {
	if f.Target == nil {
		return false
	}
	x, y := t.X-f.center[0], t.Y-f.center[1]
	return f.Target.Handle(t.Type.phase(), float64(x), float64(y))
}
