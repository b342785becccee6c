package arc

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < tol }

func TestNorm(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-720, 0},
		{359.5, 359.5},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		if have := Norm(tt.in); !near(tt.want, have) {
			t.Errorf("Norm(%v)\nwant: %v\nhave: %v\n", tt.in, tt.want, have)
		}
	}
}

func TestAngleOf(t *testing.T) {
	tests := []struct{ x, y, want float64 }{
		{1, 0, 0},
		{0, 1, 90}, // y down; 6 o'clock
		{-1, 0, 180},
		{0, -1, 270},
		{1, 1, 45},
		{1, -1, 315},
	}
	for _, tt := range tests {
		if have := AngleOf(tt.x, tt.y); !near(tt.want, have) {
			t.Errorf("AngleOf(%v, %v)\nwant: %v\nhave: %v\n", tt.x, tt.y, tt.want, have)
		}
	}
}

func TestDistance(t *testing.T) {
	for a := -360.0; a <= 720; a += 17.5 {
		if have := CW(a, a); have != 0 {
			t.Fatalf("CW(%v, %v) want 0, have %v", a, a, have)
		}
		for b := -360.0; b <= 720; b += 23.25 {
			cw, ccw := CW(a, b), CCW(a, b)
			if cw < 0 || cw >= 360 {
				t.Fatalf("CW(%v, %v) = %v out of range", a, b, cw)
			}
			if !near(cw+ccw, 360) {
				t.Fatalf("CW(%v, %v) + CCW = %v, want 360", a, b, cw+ccw)
			}
		}
	}

	if want, have := 20.0, CW(350, 10); !near(want, have) {
		t.Errorf("CW across seam\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 340.0, CW(10, 350); !near(want, have) {
		t.Errorf("CW the long way\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		start, end float64
		want       Span
	}{
		{0, 180, Span{0, 180, 180}},
		{135, 45, Span{135, 45, 270}},
		{-90, 90, Span{270, 90, 180}},
		{270, 0, Span{270, 0, 90}},
		{720, 90, Span{0, 90, 90}},
	}
	for _, tt := range tests {
		have := NewSpan(tt.start, tt.end)
		if !near(tt.want.Start, have.Start) || !near(tt.want.End, have.End) || !near(tt.want.Total, have.Total) {
			t.Errorf("NewSpan(%v, %v)\nwant: %+v\nhave: %+v\n", tt.start, tt.end, tt.want, have)
		}
	}
}

func TestSpanDegenerate(t *testing.T) {
	for _, a := range []float64{0, 90, 270, 359.95, -45, 360} {
		s := NewSpan(a, a)
		if d := CW(s.End, s.Start); math.Abs(d-Epsilon) > 1e-6 {
			t.Errorf("NewSpan(%v, %v) end is %v behind start, want %v", a, a, d, Epsilon)
		}
		if s.Total <= 0 || s.Total >= 360 {
			t.Errorf("NewSpan(%v, %v).Total = %v, want (0, 360)", a, a, s.Total)
		}
		if math.Abs(s.Total-(360-Epsilon)) > 1e-6 {
			t.Errorf("NewSpan(%v, %v).Total = %v, want %v", a, a, s.Total, 360-Epsilon)
		}
	}
}

func TestSpanAngle(t *testing.T) {
	s := NewSpan(270, 270)
	if want, have := 90.0, s.Angle(0.5); math.Abs(want-have) > 0.1 {
		t.Errorf("half of full circle from 270\nwant: ~%v\nhave: %v\n", want, have)
	}

	s = NewSpan(0, 180)
	if want, have := 90.0, s.Angle(0.5); !near(want, have) {
		t.Errorf("half of 0..180\nwant: %v\nhave: %v\n", want, have)
	}
	if !s.Contains(180) || !s.Contains(0) || s.Contains(270) {
		t.Errorf("Contains disagrees with span %+v", s)
	}
	if want, have := 45.0, s.Sweep(45); !near(want, have) {
		t.Errorf("Sweep\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestPoint(t *testing.T) {
	tests := []struct{ rx, ry, deg, x, y float64 }{
		{10, 10, 0, 10, 0},
		{10, 10, 90, 0, 10},
		{10, 5, 180, -10, 0},
		{10, 5, 270, 0, -5},
	}
	for _, tt := range tests {
		x, y := Point(tt.rx, tt.ry, tt.deg)
		if !near(tt.x, x) || !near(tt.y, y) {
			t.Errorf("Point(%v, %v, %v)\nwant: %v, %v\nhave: %v, %v\n", tt.rx, tt.ry, tt.deg, tt.x, tt.y, x, y)
		}
	}
}
