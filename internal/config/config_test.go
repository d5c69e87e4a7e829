package config

import (
	"errors"
	"flag"
	"math"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative density", func(c *Config) { c.Density = -1 }, ErrNegative},
		{"negative speed", func(c *Config) { c.SpeedMultiplier = -0.5 }, ErrNegative},
		{"negative connection radius", func(c *Config) { c.ConnectionRadius = -1 }, ErrNegative},
		{"negative pointer radius", func(c *Config) { c.PointerRadius = -3 }, ErrNegative},
		{"node alpha too high", func(c *Config) { c.NodeAlpha = 1.5 }, ErrAlphaRange},
		{"trail alpha negative", func(c *Config) { c.TrailAlpha = -0.1 }, ErrAlphaRange},
		{"infinite density", func(c *Config) { c.Density = math.Inf(1) }, ErrNotFinite},
		{"infinite speed", func(c *Config) { c.SpeedMultiplier = math.Inf(1) }, ErrNotFinite},
		{"infinite pointer radius", func(c *Config) { c.PointerRadius = math.Inf(1) }, ErrNotFinite},
		{"NaN connection radius", func(c *Config) { c.ConnectionRadius = math.NaN() }, ErrNotFinite},
		{"zero capacity", func(c *Config) { c.QuadCapacity = 0 }, ErrCapacity},
		{"zero radius is fine", func(c *Config) { c.ConnectionRadius = 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParticleCount(t *testing.T) {
	c := Default()
	c.Density = 1.0
	if got := c.ParticleCount(1000, 1000); got != 100 {
		t.Errorf("ParticleCount(1000, 1000) = %d, want 100", got)
	}

	c.Density = 1.3
	if got := c.ParticleCount(1920, 1080); got != 269 {
		t.Errorf("ParticleCount(1920, 1080) = %d, want 269", got)
	}
	if got := c.ParticleCount(0, 500); got != 0 {
		t.Errorf("ParticleCount(0, 500) = %d, want 0", got)
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	args := []string{
		"-density", "2.5",
		"-connection-radius", "80",
		"-connection-color", "10, 20,30",
		"-seed", "42",
		"-chime=false",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Density != 2.5 {
		t.Errorf("Density = %v, want 2.5", c.Density)
	}
	if c.ConnectionRadius != 80 {
		t.Errorf("ConnectionRadius = %v, want 80", c.ConnectionRadius)
	}
	if c.ConnectionColor != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("ConnectionColor = %v", c.ConnectionColor)
	}
	if c.Seed != 42 {
		t.Errorf("Seed = %d, want 42", c.Seed)
	}
	if c.Chime {
		t.Error("Chime should be disabled")
	}
	// Untouched flags keep their defaults
	if c.PointerRadius != 150 {
		t.Errorf("PointerRadius = %v, want 150", c.PointerRadius)
	}
}

func TestRGBSet(t *testing.T) {
	var c RGB
	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c", "256,0,0"} {
		if err := c.Set(bad); !errors.Is(err, ErrColorFormat) {
			t.Errorf("Set(%q) = %v, want ErrColorFormat", bad, err)
		}
	}
	if err := c.Set("147,51,234"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.String() != "147,51,234" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestNRGBA(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}
	if got := c.NRGBA(1).A; got != 255 {
		t.Errorf("alpha 1 -> %d", got)
	}
	if got := c.NRGBA(0).A; got != 0 {
		t.Errorf("alpha 0 -> %d", got)
	}
	if got := c.NRGBA(2).A; got != 255 {
		t.Errorf("alpha 2 should clamp, got %d", got)
	}
	if got := c.NRGBA(-1).A; got != 0 {
		t.Errorf("alpha -1 should clamp, got %d", got)
	}
}

func TestValidateRejectsInfiniteFlag(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse([]string{"-density", "Inf"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := c.Validate(); !errors.Is(err, ErrNotFinite) {
		t.Errorf("Validate() = %v, want %v", err, ErrNotFinite)
	}
}
