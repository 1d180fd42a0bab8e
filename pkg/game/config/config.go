// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Renderer names accepted by TOWNWALK_RENDERER
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config holds every tunable of a session
type Config struct {
	// TileSize is the pixel size of one grid cell before scaling
	TileSize int `env:"TOWNWALK_TILE_SIZE" envDefault:"16"`
	// Scale is the display scale applied on top of TileSize
	Scale float64 `env:"TOWNWALK_SCALE" envDefault:"2.0"`
	// Speed is the actor's interpolation speed in scaled pixels per frame
	Speed float64 `env:"TOWNWALK_SPEED" envDefault:"6"`

	ViewportWidth  int `env:"TOWNWALK_VIEWPORT_WIDTH"  envDefault:"1024"`
	ViewportHeight int `env:"TOWNWALK_VIEWPORT_HEIGHT" envDefault:"640"`

	// Fade timings: time to reach opaque when a modal opens or closes, and
	// the time spent fading back after the state change is committed.
	FadeOpen  time.Duration `env:"TOWNWALK_FADE_OPEN"  envDefault:"500ms"`
	FadeClose time.Duration `env:"TOWNWALK_FADE_CLOSE" envDefault:"300ms"`
	FadeHold  time.Duration `env:"TOWNWALK_FADE_HOLD"  envDefault:"100ms"`

	// TextBoxGuard is how long a fresh text box ignores close requests
	TextBoxGuard time.Duration `env:"TOWNWALK_TEXTBOX_GUARD" envDefault:"200ms"`

	// WorldPath is a YAML world definition; empty uses the embedded town
	WorldPath string `env:"TOWNWALK_WORLD"`
	Renderer  string `env:"TOWNWALK_RENDERER" envDefault:"ebiten"`
	Debug     bool   `env:"TOWNWALK_DEBUG"`
}

// Default returns the configuration with every default applied
func Default() Config {
	return Config{
		TileSize:       16,
		Scale:          2.0,
		Speed:          6,
		ViewportWidth:  1024,
		ViewportHeight: 640,
		FadeOpen:       500 * time.Millisecond,
		FadeClose:      300 * time.Millisecond,
		FadeHold:       100 * time.Millisecond,
		TextBoxGuard:   200 * time.Millisecond,
		Renderer:       RendererEbiten,
	}
}

// Load parses the environment on top of the defaults and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// TilePixels is the on-screen size of one cell (TileSize * Scale)
func (c Config) TilePixels() float64 {
	return float64(c.TileSize) * c.Scale
}

// Validate rejects settings the movement and camera code cannot work with
func (c Config) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight))
	}
	if c.FadeOpen < 0 || c.FadeClose < 0 || c.FadeHold < 0 || c.TextBoxGuard < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
