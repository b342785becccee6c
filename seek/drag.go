package seek

import (
	"math"

	"dasa.cc/seekarc/arc"
	"dasa.cc/seekarc/ring"
)

// Phase of a pointer sample.
type Phase uint8

const (
	PhaseDown Phase = iota + 1
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "invalid"
	}
}

// Tuning holds the drag heuristics, in degrees. These were tuned for human
// drag speeds; change the defaults only with care.
type Tuning struct {
	// SeamJump is the change of clockwise distance from start within one
	// sample that is read as crossing the gap between end and start.
	SeamJump float64

	// Release is how far past a boundary, away from the arc, the pointer must
	// travel for a lock on that boundary to let go.
	Release float64
}

var DefaultTuning = Tuning{SeamJump: 180, Release: 90}

// gesture is the state of one press-to-release drag.
type gesture struct {
	clockwise bool
	lockStart bool
	lockEnd   bool
	lastCW    float64 // previous sample's clockwise distance from start
}

// sample is a pointer position measured against a span.
type sample struct {
	angle    float64
	radius   float64
	cwStart  float64
	ccwStart float64
	cwEnd    float64
}

func measure(s arc.Span, x, y float64) sample {
	angle := arc.AngleOf(x, y)
	cw := arc.CW(s.Start, angle)
	return sample{
		angle:    angle,
		radius:   math.Hypot(x, y),
		cwStart:  cw,
		ccwStart: 360 - cw,
		cwEnd:    arc.CW(s.End, angle),
	}
}

// tracker turns pointer samples into range updates.
type tracker struct {
	g           *gesture // nil while idle
	tune        Tuning
	band        ring.Band
	moveOutside bool
}

func (t *tracker) active() bool { return t.g != nil }

// outcome of feeding a sample to the tracker.
type outcome struct {
	handled bool // consumed; otherwise the host may route it elsewhere
	notify  bool // a user change notification is due
}

func (t *tracker) handle(r *Range, p Phase, x, y float64) outcome {
	switch p {
	case PhaseDown:
		return t.down(r, measure(r.Span(), x, y))
	case PhaseMove:
		return t.move(r, measure(r.Span(), x, y))
	case PhaseUp:
		return t.up()
	}
	return outcome{}
}

func (t *tracker) down(r *Range, s sample) outcome {
	t.g = nil
	if s.cwStart > r.Span().Total {
		Logger().Debug("press outside span", attrAngle(s.angle))
		return outcome{}
	}
	if !t.band.Contains(s.radius) {
		Logger().Debug("press outside ring", attrRadius(s.radius))
		return outcome{}
	}
	r.SetValueFromAngle(s.angle)
	t.g = &gesture{clockwise: true, lastCW: s.cwStart}
	return outcome{handled: true, notify: true}
}

func (t *tracker) move(r *Range, s sample) outcome {
	g := t.g
	if g == nil {
		return outcome{}
	}
	total := r.Span().Total

	if g.lastCW < s.cwStart {
		if s.cwStart-g.lastCW > t.tune.SeamJump && !g.clockwise {
			g.lockStart, g.lockEnd = true, false
			Logger().Debug("lock", attrLock("start"), attrAngle(s.angle))
		} else {
			g.clockwise = true
		}
	} else {
		if g.lastCW-s.cwStart > t.tune.SeamJump && g.clockwise {
			g.lockEnd, g.lockStart = true, false
			Logger().Debug("lock", attrLock("end"), attrAngle(s.angle))
		} else {
			g.clockwise = false
		}
	}

	if g.lockStart && (g.clockwise || s.ccwStart > t.tune.Release) {
		g.lockStart = false
		Logger().Debug("unlock", attrLock("start"), attrAngle(s.angle))
	}
	if g.lockEnd && (!g.clockwise || s.cwEnd > t.tune.Release) {
		g.lockEnd = false
		Logger().Debug("unlock", attrLock("end"), attrAngle(s.angle))
	}

	// a fast clockwise swipe may leave the span without a sample near the end.
	if !g.lockEnd && s.cwStart > total && g.clockwise && g.lastCW < total {
		g.lockEnd = true
		Logger().Debug("lock", attrLock("end"), attrAngle(s.angle))
	}

	var applied bool
	switch {
	case g.lockStart:
		r.snap(0)
		applied = true
	case g.lockEnd:
		r.snap(r.Max())
		applied = true
	case t.moveOutside || t.band.Within(s.radius):
		if s.cwStart <= total {
			r.SetValueFromAngle(s.angle)
			applied = true
		}
	default:
		return outcome{handled: true}
	}
	g.lastCW = s.cwStart
	return outcome{handled: true, notify: applied}
}

func (t *tracker) up() outcome {
	if t.g == nil {
		return outcome{}
	}
	t.g = nil
	return outcome{handled: true, notify: true}
}
