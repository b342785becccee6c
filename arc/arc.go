// Package arc implements angle math for positions on a circular arc.
//
// Angles are geometric degrees: 0 is 3 o'clock and angles increase clockwise,
// which for screen coordinates (y grows downward) is the direction atan2 sweeps.
package arc

import "math"

// Epsilon is subtracted from an end angle equal to its start angle so the
// span keeps a well defined clockwise direction.
const Epsilon = 0.1

// Norm returns deg in [0, 360).
func Norm(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 { // -tiny + 360 rounds up
		deg = 0
	}
	return deg
}

// AngleOf returns the angle of point x, y relative to the origin.
func AngleOf(x, y float64) float64 {
	return Norm(math.Atan2(y, x) * 180 / math.Pi)
}

// CW returns the clockwise distance from one angle to another in [0, 360).
func CW(from, to float64) float64 { return Norm(to - from) }

// CCW returns the counter-clockwise distance from one angle to another, in (0, 360].
func CCW(from, to float64) float64 { return 360 - CW(from, to) }

// Point returns the position at deg on an ellipse centered at the origin.
func Point(rx, ry, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return rx * math.Cos(rad), ry * math.Sin(rad)
}

// Span is the clockwise stretch from Start to End; Total is its length in degrees.
type Span struct {
	Start, End, Total float64
}

// NewSpan normalizes start and end. If they coincide, end is pulled back by
// Epsilon; Total is always within (0, 360].
func NewSpan(start, end float64) Span {
	s := Span{Start: Norm(start), End: Norm(end)}
	if s.Start == s.End {
		s.End = Norm(s.End - Epsilon)
	}
	s.Total = math.Mod(360-(s.Start-s.End), 360)
	if s.Total <= 0 {
		s.Total = 360
	}
	return s
}

// Angle maps frac of the span, 0 at Start and 1 at End, to an angle.
func (s Span) Angle(frac float64) float64 { return Norm(frac*s.Total + s.Start) }

// Sweep returns the clockwise distance from Start to angle.
func (s Span) Sweep(angle float64) float64 { return CW(s.Start, angle) }

// Contains reports whether angle lies on the span.
func (s Span) Contains(angle float64) bool { return s.Sweep(angle) <= s.Total }
