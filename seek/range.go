package seek

import (
	"errors"
	"fmt"
	"math"

	"dasa.cc/seekarc/arc"
)

// ErrInvalidMax is returned for a range whose max is not positive.
var ErrInvalidMax = errors.New("seek: max must be positive")

// Range maps integer values in [0, Max] onto an arc span.
//
// Value is always derived from the angular state, so a value set directly and
// one recovered from an angle agree.
type Range struct {
	span     arc.Span
	max      int
	value    int
	pointer  float64 // angle of the current value
	progress float64 // clockwise degrees from span start to pointer
}

// NewRange returns a range over the arc from start to end with value zero.
func NewRange(start, end float64, max int) (*Range, error) {
	r := &Range{}
	if err := r.Configure(start, end, max); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure replaces the span and max. An invalid max leaves r as it was.
// The current value is clamped into the new range.
func (r *Range) Configure(start, end float64, max int) error {
	if max <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMax, max)
	}
	r.span = arc.NewSpan(start, end)
	r.max = max
	r.value = clamp(r.value, 0, max)
	r.place()
	return nil
}

// SetValue clamps v into range and reports whether the value changed.
func (r *Range) SetValue(v int) bool {
	v = clamp(v, 0, r.max)
	if v == r.value {
		return false
	}
	r.value = v
	r.place()
	return true
}

// SetValueFromAngle sets the value nearest angle, approached clockwise from
// the span start, and reports whether the value changed. The pointer snaps to
// the angle of that value.
func (r *Range) SetValueFromAngle(angle float64) bool {
	r.progress = r.span.Sweep(arc.Norm(angle))
	v := r.Value()
	changed := v != r.value
	r.value = v
	r.place()
	return changed
}

// snap sets v and places the pointer exactly on it, even when v is unchanged.
func (r *Range) snap(v int) {
	r.value = clamp(v, 0, r.max)
	r.place()
}

// place derives pointer and progress from value.
func (r *Range) place() {
	r.progress = float64(r.value) / float64(r.max) * r.span.Total
	r.pointer = arc.Norm(r.span.Start + r.progress)
}

// Value returns the value at the pointer.
func (r *Range) Value() int {
	if r.max == 0 {
		return 0
	}
	return clamp(int(math.Round(float64(r.max)*r.progress/r.span.Total)), 0, r.max)
}

func (r *Range) Max() int { return r.max }

func (r *Range) Span() arc.Span { return r.span }

// Pointer returns the angle at which the current value sits.
func (r *Range) Pointer() float64 { return r.pointer }

// Progress returns the clockwise degrees from span start to the pointer.
func (r *Range) Progress() float64 { return r.progress }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
