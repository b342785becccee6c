package seek

import (
	"errors"
	"math"
	"testing"
)

func TestRangeRoundTrip(t *testing.T) {
	spans := [][2]float64{{0, 180}, {270, 270}, {135, 45}, {90, 89}, {350, 10}}
	for _, sp := range spans {
		for _, max := range []int{1, 7, 100, 1000} {
			r, err := NewRange(sp[0], sp[1], max)
			if err != nil {
				t.Fatal(err)
			}
			for v := 0; v <= max; v++ {
				angle := r.Span().Angle(float64(v) / float64(max))
				r.SetValueFromAngle(angle)
				if have := r.Value(); have != v {
					t.Fatalf("span %v max %v: angle %v\nwant: %v\nhave: %v\n", sp, max, angle, v, have)
				}
			}
		}
	}
}

func TestRangeSetValue(t *testing.T) {
	r, err := NewRange(0, 180, 100)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in, want int
		changed  bool
	}{
		{50, 50, true},
		{50, 50, false},
		{-5, 0, true},
		{-1, 0, false},
		{1000, 100, true},
		{100, 100, false},
	}
	for _, tt := range tests {
		changed := r.SetValue(tt.in)
		if changed != tt.changed || r.Value() != tt.want {
			t.Errorf("SetValue(%v)\nwant: %v changed=%v\nhave: %v changed=%v\n", tt.in, tt.want, tt.changed, r.Value(), changed)
		}
	}

	r.SetValue(50)
	if want, have := 90.0, r.Pointer(); math.Abs(want-have) > 1e-9 {
		t.Errorf("Pointer\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 90.0, r.Progress(); math.Abs(want-have) > 1e-9 {
		t.Errorf("Progress\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestRangeFullCircle(t *testing.T) {
	r, err := NewRange(270, 270, 100)
	if err != nil {
		t.Fatal(err)
	}
	if total := r.Span().Total; total >= 360 || total < 359.8 {
		t.Fatalf("Total = %v, want just under 360", total)
	}
	r.SetValue(50)
	if want, have := 90.0, r.Pointer(); math.Abs(want-have) > 0.1 {
		t.Errorf("Pointer\nwant: ~%v\nhave: %v\n", want, have)
	}
	r.SetValue(100)
	if want, have := 100, r.Value(); want != have {
		t.Errorf("Value at max\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestRangeSetValueFromAngle(t *testing.T) {
	r, err := NewRange(0, 180, 100)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		angle   float64
		want    int
		changed bool
	}{
		{90, 50, true},
		{90.4, 50, false},
		{91, 51, true},
		{-270, 50, true}, // normalized to 90
		{180, 100, true},
		{200, 100, false}, // past the end clamps
		{0, 0, true},
	}
	for _, tt := range tests {
		changed := r.SetValueFromAngle(tt.angle)
		if changed != tt.changed || r.Value() != tt.want {
			t.Errorf("SetValueFromAngle(%v)\nwant: %v changed=%v\nhave: %v changed=%v\n", tt.angle, tt.want, tt.changed, r.Value(), changed)
		}
	}
}

func TestRangeSetValueFromAngleSnaps(t *testing.T) {
	r, err := NewRange(0, 180, 10)
	if err != nil {
		t.Fatal(err)
	}
	r.SetValueFromAngle(100)
	if want, have := 6, r.Value(); want != have {
		t.Errorf("Value\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 108.0, r.Pointer(); math.Abs(want-have) > 1e-9 {
		t.Errorf("Pointer\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 108.0, r.Progress(); math.Abs(want-have) > 1e-9 {
		t.Errorf("Progress\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestRangeConfigure(t *testing.T) {
	r, err := NewRange(0, 180, 100)
	if err != nil {
		t.Fatal(err)
	}
	r.SetValue(80)

	for _, max := range []int{0, -3} {
		if err := r.Configure(0, 90, max); !errors.Is(err, ErrInvalidMax) {
			t.Errorf("Configure max=%v\nwant: %v\nhave: %v\n", max, ErrInvalidMax, err)
		}
	}
	if r.Max() != 100 || r.Value() != 80 || r.Span().Total != 180 {
		t.Fatalf("rejected configuration changed range: max=%v value=%v span=%+v", r.Max(), r.Value(), r.Span())
	}

	if err := r.Configure(0, 90, 50); err != nil {
		t.Fatal(err)
	}
	if want, have := 50, r.Value(); want != have {
		t.Errorf("value after shrinking max\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 90.0, r.Pointer(); math.Abs(want-have) > 1e-9 {
		t.Errorf("pointer after shrinking max\nwant: %v\nhave: %v\n", want, have)
	}

	if _, err := NewRange(0, 0, 0); !errors.Is(err, ErrInvalidMax) {
		t.Errorf("NewRange max=0\nwant: %v\nhave: %v\n", ErrInvalidMax, err)
	}
}
