// Package config loads scroll tuning from an optional TOML file.
// Validation happens here, at the boundary; the physics core trusts the
// values it is handed.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/scrollview/component"
	"github.com/lixenwraith/scrollview/parameter"
)

// Config holds user-tunable scroll behavior
type Config struct {
	// ScrollSpeed multiplies wheel input; negative values invert direction
	ScrollSpeed float64 `toml:"scroll_speed"`

	// Friction is the exponential fling deceleration rate per second.
	// Must be strictly positive and finite.
	Friction float64 `toml:"friction"`

	// StopThreshold is the velocity magnitude below which a fling snaps
	// to a full stop, in content units per second
	StopThreshold float64 `toml:"stop_threshold"`

	// InvertWheel flips the wheel scroll direction
	InvertWheel bool `toml:"invert_wheel"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		ScrollSpeed:   parameter.DefaultScrollSpeed,
		Friction:      parameter.DefaultFriction,
		StopThreshold: parameter.FlingStopThreshold,
	}
}

// Load reads a TOML tuning file over the defaults. A missing file is not an
// error; the defaults apply. A present but malformed or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the numeric constraints the physics core assumes
func (c Config) Validate() error {
	if math.IsNaN(c.Friction) || math.IsInf(c.Friction, 0) || c.Friction <= 0 {
		return fmt.Errorf("friction must be a strictly positive finite value, got %v", c.Friction)
	}
	if math.IsNaN(c.ScrollSpeed) || math.IsInf(c.ScrollSpeed, 0) {
		return fmt.Errorf("scroll_speed must be finite, got %v", c.ScrollSpeed)
	}
	if math.IsNaN(c.StopThreshold) || math.IsInf(c.StopThreshold, 0) || c.StopThreshold < 0 {
		return fmt.Errorf("stop_threshold must be finite and non-negative, got %v", c.StopThreshold)
	}
	return nil
}

// ScrollView builds a viewport component with this tuning applied
func (c Config) ScrollView() component.ScrollViewComponent {
	speed := c.ScrollSpeed
	if c.InvertWheel {
		speed = -speed
	}
	return component.ScrollViewComponent{
		ScrollSpeed: speed,
		Friction:    c.Friction,
	}
}
