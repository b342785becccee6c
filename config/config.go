// Package config resolves the attributes of a seek control from defaults, an
// optional YAML file and SEEKARC_ environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"dasa.cc/seekarc/ring"
	"dasa.cc/seekarc/seek"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEEKARC_"

var ErrInvalid = errors.New("config: invalid")

// Config holds control attributes. Lengths are in density independent units.
type Config struct {
	StartAngle float64 `yaml:"start_angle" env:"START_ANGLE"`
	EndAngle   float64 `yaml:"end_angle" env:"END_ANGLE"`
	Max        int     `yaml:"max" env:"MAX"`
	Progress   int     `yaml:"progress" env:"PROGRESS"`

	RadiusX     float64 `yaml:"radius_x" env:"RADIUS_X"`
	RadiusY     float64 `yaml:"radius_y" env:"RADIUS_Y"`
	CustomRadii bool    `yaml:"custom_radii" env:"CUSTOM_RADII"`
	EqualCircle bool    `yaml:"equal_circle" env:"EQUAL_CIRCLE"`

	PointerRadius   float64 `yaml:"pointer_radius" env:"POINTER_RADIUS"`
	HaloWidth       float64 `yaml:"halo_width" env:"HALO_WIDTH"`
	HaloBorderWidth float64 `yaml:"halo_border_width" env:"HALO_BORDER_WIDTH"`
	StrokeWidth     float64 `yaml:"stroke_width" env:"STROKE_WIDTH"`
	MinTouchTarget  float64 `yaml:"min_touch_target" env:"MIN_TOUCH_TARGET"`

	MoveOutside bool `yaml:"move_outside" env:"MOVE_OUTSIDE"`

	// SeamJump and Release tune drag direction and end locks, in degrees.
	SeamJump float64 `yaml:"seam_jump" env:"SEAM_JUMP"`
	Release  float64 `yaml:"release" env:"RELEASE"`
}

// Default returns the stock attributes: a full circle starting at 12 o'clock.
func Default() Config {
	return Config{
		StartAngle:      270,
		EndAngle:        270,
		Max:             100,
		RadiusX:         30,
		RadiusY:         30,
		EqualCircle:     true,
		PointerRadius:   7,
		HaloWidth:       6,
		HaloBorderWidth: 2,
		StrokeWidth:     5,
		MinTouchTarget:  48,
		SeamJump:        seek.DefaultTuning.SeamJump,
		Release:         seek.DefaultTuning.Release,
	}
}

// Load returns defaults overlaid with the YAML file at path, if path is not
// empty, and then the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := cfg.decode(bytes.NewReader(buf)); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Validate reports every attribute out of range, wrapped in ErrInvalid.
func (cfg Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(cfg.Max > 0, "max %v not positive", cfg.Max)
	check(cfg.Progress >= 0, "progress %v negative", cfg.Progress)
	for _, l := range []struct {
		name string
		v    float64
	}{
		{"radius_x", cfg.RadiusX},
		{"radius_y", cfg.RadiusY},
		{"pointer_radius", cfg.PointerRadius},
		{"halo_width", cfg.HaloWidth},
		{"halo_border_width", cfg.HaloBorderWidth},
		{"stroke_width", cfg.StrokeWidth},
		{"min_touch_target", cfg.MinTouchTarget},
	} {
		check(l.v >= 0, "%s %v negative", l.name, l.v)
	}
	check(cfg.SeamJump > 0, "seam_jump %v not positive", cfg.SeamJump)
	check(cfg.Release > 0, "release %v not positive", cfg.Release)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Seek returns the configuration of a Seekbar.
func (cfg Config) Seek() seek.Config {
	return seek.Config{
		StartAngle:  cfg.StartAngle,
		EndAngle:    cfg.EndAngle,
		Max:         cfg.Max,
		Value:       cfg.Progress,
		MoveOutside: cfg.MoveOutside,
		Tuning:      seek.Tuning{SeamJump: cfg.SeamJump, Release: cfg.Release},
	}
}

// Style returns ring dimensions in pixels for density d.
func (cfg Config) Style(d ring.Density) ring.Style {
	return ring.Style{
		StrokeWidth:     d.Px(cfg.StrokeWidth),
		PointerRadius:   d.Px(cfg.PointerRadius),
		HaloWidth:       d.Px(cfg.HaloWidth),
		HaloBorderWidth: d.Px(cfg.HaloBorderWidth),
		RadiusX:         d.Px(cfg.RadiusX),
		RadiusY:         d.Px(cfg.RadiusY),
		CustomRadii:     cfg.CustomRadii,
		EqualCircle:     cfg.EqualCircle,
		MinTouchTarget:  d.Px(cfg.MinTouchTarget),
	}
}
