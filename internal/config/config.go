package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Window and host defaults
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Particle Network"
	TPS          = 60

	// Terminal cell footprint in surface units
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Particle network defaults
const (
	ParticleCount = 80
	Drift         = 0.2 // Initial velocity range [-Drift, Drift)
	RadiusMin     = 0.5
	RadiusMax     = 2.0
	OpacityMin    = 0.1
	OpacityMax    = 0.4

	LinkDistance = 150.0
	LinkAlpha    = 0.08
	LinkWidth    = 0.5

	PointerRadius    = 200.0
	PointerGlow      = 0.5 // Opacity gained at the pointer
	PointerAlphaCap  = 0.8
	PointerGrow      = 1.5 // Radius gained at the pointer
	PointerLinkAlpha = 0.12
	PointerLinkWidth = 0.5
	Attraction       = 0.00003

	Damping    = 0.999
	WrapMargin = 10.0

	ParticleColor   = "#94a3b8"
	BackgroundColor = "#0f172a"
)

// Host backends
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// Palette modes
const (
	TintSolid = "solid"
	TintNoise = "noise"
)

// Network holds every tunable of the particle network engine
type Network struct {
	Count      int     `json:"count"`
	Drift      float64 `json:"drift"`
	RadiusMin  float64 `json:"radius_min"`
	RadiusMax  float64 `json:"radius_max"`
	OpacityMin float64 `json:"opacity_min"`
	OpacityMax float64 `json:"opacity_max"`

	LinkDistance float64 `json:"link_distance"`
	LinkAlpha    float64 `json:"link_alpha"`
	LinkWidth    float64 `json:"link_width"`

	PointerRadius    float64 `json:"pointer_radius"`
	PointerGlow      float64 `json:"pointer_glow"`
	PointerAlphaCap  float64 `json:"pointer_alpha_cap"`
	PointerGrow      float64 `json:"pointer_grow"`
	PointerLinkAlpha float64 `json:"pointer_link_alpha"`
	PointerLinkWidth float64 `json:"pointer_link_width"`
	Attraction       float64 `json:"attraction"`

	Damping    float64 `json:"damping"`
	WrapMargin float64 `json:"wrap_margin"`

	Color      string  `json:"color"`
	Tint       string  `json:"tint"`
	TintSpread float64 `json:"tint_spread"` // Hue swing in degrees for the noise tint
	TintScale  float64 `json:"tint_scale"`  // Surface units per noise period
}

// Config is the full application configuration
type Config struct {
	Backend    string  `json:"backend"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Title      string  `json:"title"`
	TPS        int     `json:"tps"`
	Seed       int64   `json:"seed"` // 0 seeds from the clock
	HUD        bool    `json:"hud"`
	Background string  `json:"background"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
	LogFile    string  `json:"log_file"`

	Network Network `json:"network"`
}

// DefaultNetwork returns the engine tunables with their default values
func DefaultNetwork() Network {
	return Network{
		Count:            ParticleCount,
		Drift:            Drift,
		RadiusMin:        RadiusMin,
		RadiusMax:        RadiusMax,
		OpacityMin:       OpacityMin,
		OpacityMax:       OpacityMax,
		LinkDistance:     LinkDistance,
		LinkAlpha:        LinkAlpha,
		LinkWidth:        LinkWidth,
		PointerRadius:    PointerRadius,
		PointerGlow:      PointerGlow,
		PointerAlphaCap:  PointerAlphaCap,
		PointerGrow:      PointerGrow,
		PointerLinkAlpha: PointerLinkAlpha,
		PointerLinkWidth: PointerLinkWidth,
		Attraction:       Attraction,
		Damping:          Damping,
		WrapMargin:       WrapMargin,
		Color:            ParticleColor,
		Tint:             TintSolid,
		TintSpread:       60,
		TintScale:        400,
	}
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Backend:    BackendEbiten,
		Width:      WindowWidth,
		Height:     WindowHeight,
		Title:      WindowTitle,
		TPS:        TPS,
		Background: BackgroundColor,
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
		Network:    DefaultNetwork(),
	}
}

// Load reads a JSON config file on top of the defaults.
// A missing file is reported with an error wrapping os.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return errors.New("cell size must be positive")
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return c.Network.Validate()
}

// Validate reports the first invalid engine tunable
func (n Network) Validate() error {
	if n.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", n.Count)
	}
	if n.Drift < 0 {
		return fmt.Errorf("drift must not be negative, got %g", n.Drift)
	}
	if n.RadiusMin < 0 || n.RadiusMax < n.RadiusMin {
		return fmt.Errorf("radius range [%g, %g] is invalid", n.RadiusMin, n.RadiusMax)
	}
	if n.OpacityMin < 0 || n.OpacityMax < n.OpacityMin || n.OpacityMax > 1 {
		return fmt.Errorf("opacity range [%g, %g] is invalid", n.OpacityMin, n.OpacityMax)
	}
	if n.LinkDistance <= 0 {
		return fmt.Errorf("link_distance must be positive, got %g", n.LinkDistance)
	}
	if n.PointerRadius <= 0 {
		return fmt.Errorf("pointer_radius must be positive, got %g", n.PointerRadius)
	}
	if n.Damping <= 0 || n.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %g", n.Damping)
	}
	if n.WrapMargin < 0 {
		return fmt.Errorf("wrap_margin must not be negative, got %g", n.WrapMargin)
	}
	if _, err := colorful.Hex(n.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch n.Tint {
	case TintSolid:
	case TintNoise:
		if n.TintScale <= 0 {
			return fmt.Errorf("tint_scale must be positive, got %g", n.TintScale)
		}
	default:
		return fmt.Errorf("unknown tint %q", n.Tint)
	}
	return nil
}
