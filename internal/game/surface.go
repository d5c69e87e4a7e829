package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-backdrop/internal/config"
)

// canvas is an offscreen image the simulation paints on. It is not cleared
// between frames, which is what makes the trail effect work.
type canvas struct {
	img     *ebiten.Image
	visible bool
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: ebiten.NewImage(w, h), visible: true}
}

func (c *canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) FillRect(x, y, w, h float64, clr config.RGB, alpha float64) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), clr.NRGBA(alpha), false)
}

func (c *canvas) FillCircle(x, y, radius float64, clr config.RGB, alpha float64) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), clr.NRGBA(alpha), true)
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, clr config.RGB, alpha float64) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr.NRGBA(alpha), true)
}

func (c *canvas) Clear() { c.img.Clear() }

func (c *canvas) SetVisible(v bool) { c.visible = v }

// resize swaps in a fresh image when the size changed and reports whether it did.
func (c *canvas) resize(w, h int) bool {
	if w < 1 || h < 1 {
		return false
	}
	b := c.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return false
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(w, h)
	return true
}
