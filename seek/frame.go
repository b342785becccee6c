package seek

import (
	"golang.org/x/image/math/f64"

	"dasa.cc/seekarc/arc"
)

// Frame holds what a renderer needs to draw a control, in pixels relative to
// the control's center and in geometric degrees.
type Frame struct {
	// Min and Max are corners of the rectangle the ring is inscribed in.
	Min, Max f64.Vec2

	// Start and Sweep describe the full arc.
	Start, Sweep float64

	// ProgressStart and ProgressSweep describe the filled arc.
	ProgressStart, ProgressSweep float64

	// Pointer is where the draggable pointer sits.
	Pointer f64.Vec2

	Value  int
	Moving bool
}

// RadiusX returns half the width of the ring's rectangle.
func (f Frame) RadiusX() float64 { return (f.Max[0] - f.Min[0]) / 2 }

// RadiusY returns half the height of the ring's rectangle.
func (f Frame) RadiusY() float64 { return (f.Max[1] - f.Min[1]) / 2 }

func (s *Seekbar) computeFrame() Frame {
	sp := s.rng.Span()
	f := Frame{
		Start:         sp.Start,
		Sweep:         sp.Total,
		ProgressStart: sp.Start,
		ProgressSweep: s.rng.Progress(),
		Value:         s.Value(),
		Moving:        s.drag.active(),
	}
	f.Min, f.Max = s.ring.Bounds()

	// end of the filled arc, or start of the full arc when nothing is filled.
	deg := f.ProgressStart + f.ProgressSweep
	if f.ProgressSweep <= 0 {
		deg = f.Start
	}
	x, y := arc.Point(f.RadiusX(), f.RadiusY(), deg)
	f.Pointer = f64.Vec2{x, y}
	return f
}
