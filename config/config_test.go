package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dasa.cc/seekarc/ring"
	"dasa.cc/seekarc/seek"
)

func writeFile(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seekarc.yaml")
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	want := seek.Config{StartAngle: 270, EndAngle: 270, Max: 100, Tuning: seek.DefaultTuning}
	if diff := cmp.Diff(want, cfg.Seek()); diff != "" {
		t.Errorf("Seek (-want +have):\n%s", diff)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("(-want +have):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
start_angle: 0
end_angle: 180
max: 50
progress: 10
move_outside: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.StartAngle, want.EndAngle = 0, 180
	want.Max, want.Progress = 50, 10
	want.MoveOutside = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +have):\n%s", diff)
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "max: 50\nstroke_width: 8\n")
	t.Setenv("SEEKARC_MAX", "200")
	t.Setenv("SEEKARC_EQUAL_CIRCLE", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want, have := 200, cfg.Max; want != have {
		t.Errorf("max\nwant: %v\nhave: %v\n", want, have)
	}
	if want, have := 8.0, cfg.StrokeWidth; want != have {
		t.Errorf("stroke_width\nwant: %v\nhave: %v\n", want, have)
	}
	if cfg.EqualCircle {
		t.Error("equal_circle not overridden")
	}
	if want, have := 270.0, cfg.StartAngle; want != have {
		t.Errorf("start_angle\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Load(writeFile(t, "maximum: 5\n")); err == nil {
		t.Error("unknown field accepted")
	}

	t.Setenv("SEEKARC_MAX", "lots")
	if _, err := Load(""); err == nil {
		t.Error("malformed env accepted")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Max = 0
	cfg.StrokeWidth = -1
	cfg.Release = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid, have %v", err)
	}
	for _, s := range []string{"max", "stroke_width", "release"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("%q missing from %q", s, err)
		}
	}
}

func TestStyle(t *testing.T) {
	have := Default().Style(ring.XHDPI)
	want := ring.Style{
		StrokeWidth:     10,
		PointerRadius:   14,
		HaloWidth:       12,
		HaloBorderWidth: 4,
		RadiusX:         60,
		RadiusY:         60,
		EqualCircle:     true,
		MinTouchTarget:  96,
	}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("(-want +have):\n%s", diff)
	}
}
