package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque color; opacity is supplied per draw call.
type RGB struct {
	R, G, B uint8
}

// NRGBA pairs the color with alpha in [0, 1]. Out-of-range alpha is clamped.
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

func (c *RGB) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Set implements flag.Value.
func (c *RGB) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("%q: %w", s, ErrColorFormat)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return fmt.Errorf("%q: %w", s, ErrColorFormat)
		}
		ch[i] = uint8(v)
	}
	c.R, c.G, c.B = ch[0], ch[1], ch[2]
	return nil
}
