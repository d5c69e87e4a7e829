package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Area covered by one unit of Density (100px x 100px)
	AreaUnit = 10000.0

	// Particle shape
	MinRadius     = 1.0
	RadiusSpread  = 2.0
	MinDriftSpeed = 0.1
	DriftSpread   = 0.2

	// Frames between drift angle changes
	DriftPeriod = 120
	// Initial timers are spread over [0, DriftTimerSpread) so particles don't turn together
	DriftTimerSpread = 100
	// Fraction of the remaining distance to the drift center covered per frame
	PursuitDivisor = 50.0

	// Line styling
	PointerLineWidth    = 2
	PointerLineScale    = 0.9
	ConnectionLineWidth = 1
	ConnectionLineScale = 0.4

	// Toggle button dimensions
	ButtonWidth  = 140
	ButtonHeight = 32
	ButtonX      = 12
	ButtonY      = 28
)

var (
	ErrNegative    = errors.New("value must not be negative")
	ErrNotFinite   = errors.New("value must be finite")
	ErrAlphaRange  = errors.New("alpha must be within [0, 1]")
	ErrCapacity    = errors.New("quadtree capacity must be at least 1")
	ErrColorFormat = errors.New("color must be formatted as r,g,b")
)

// Config holds every tunable of the particle simulation and its hosts.
type Config struct {
	Density          float64
	SpeedMultiplier  float64
	ConnectionRadius float64
	PointerRadius    float64

	NodeColor       RGB
	ConnectionColor RGB
	PointerColor    RGB
	BackgroundColor RGB

	NodeAlpha  float64
	TrailAlpha float64

	QuadCapacity int
	Seed         uint64

	Chime      bool
	Soundtrack string
}

// Default returns the configuration the backdrop ships with.
func Default() Config {
	return Config{
		Density:          1.3,
		SpeedMultiplier:  1,
		ConnectionRadius: 120,
		PointerRadius:    150,

		NodeColor:       RGB{R: 255, G: 255, B: 255},
		ConnectionColor: RGB{R: 147, G: 51, B: 234},
		PointerColor:    RGB{R: 186, G: 85, B: 211},
		BackgroundColor: RGB{R: 9, G: 10, B: 15},

		NodeAlpha:  0.8,
		TrailAlpha: 0.05,

		QuadCapacity: 4,
		Chime:        true,
	}
}

// RegisterFlags binds the config fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Density, "density", c.Density, "particles per 10,000 square pixels")
	fs.Float64Var(&c.SpeedMultiplier, "speed", c.SpeedMultiplier, "global drift speed multiplier")
	fs.Float64Var(&c.ConnectionRadius, "connection-radius", c.ConnectionRadius, "max distance for particle-to-particle lines")
	fs.Float64Var(&c.PointerRadius, "pointer-radius", c.PointerRadius, "max distance for pointer-to-particle lines")
	fs.Var(&c.NodeColor, "node-color", "particle color as r,g,b")
	fs.Var(&c.ConnectionColor, "connection-color", "connection line color as r,g,b")
	fs.Var(&c.PointerColor, "pointer-color", "pointer line color as r,g,b")
	fs.Var(&c.BackgroundColor, "background-color", "background and trail color as r,g,b")
	fs.IntVar(&c.QuadCapacity, "quad-capacity", c.QuadCapacity, "points held by a quadtree node before it subdivides")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&c.Chime, "chime", c.Chime, "play a short tone when toggling")
	fs.StringVar(&c.Soundtrack, "soundtrack", c.Soundtrack, "optional wav/mp3/flac file looped while running")
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	nonNeg := []struct {
		name string
		v    float64
	}{
		{"density", c.Density},
		{"speed", c.SpeedMultiplier},
		{"connection-radius", c.ConnectionRadius},
		{"pointer-radius", c.PointerRadius},
	}
	for _, f := range nonNeg {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrNotFinite)
		}
		if f.v < 0 {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrNegative)
		}
	}
	if !inUnit(c.NodeAlpha) {
		return fmt.Errorf("node alpha %v: %w", c.NodeAlpha, ErrAlphaRange)
	}
	if !inUnit(c.TrailAlpha) {
		return fmt.Errorf("trail alpha %v: %w", c.TrailAlpha, ErrAlphaRange)
	}
	if c.QuadCapacity < 1 {
		return fmt.Errorf("quad-capacity %d: %w", c.QuadCapacity, ErrCapacity)
	}
	return nil
}

// ParticleCount is floor(area / AreaUnit * Density).
func (c Config) ParticleCount(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / AreaUnit * c.Density))
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
