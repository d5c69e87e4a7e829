package quadtree

import "gonum.org/v1/gonum/spatial/r2"

// Region is an axis-aligned rectangle given by its center and half extents.
type Region struct {
	Center r2.Vec
	Half   r2.Vec
}

func NewRegion(cx, cy, halfWidth, halfHeight float64) Region {
	return Region{
		Center: r2.Vec{X: cx, Y: cy},
		Half:   r2.Vec{X: halfWidth, Y: halfHeight},
	}
}

// Square returns the region of side 2*half centered on c.
func Square(c r2.Vec, half float64) Region {
	return Region{Center: c, Half: r2.Vec{X: half, Y: half}}
}

// Contains includes the edges.
func (r Region) Contains(p r2.Vec) bool {
	return p.X >= r.Center.X-r.Half.X &&
		p.X <= r.Center.X+r.Half.X &&
		p.Y >= r.Center.Y-r.Half.Y &&
		p.Y <= r.Center.Y+r.Half.Y
}

// Intersects includes touching edges, so a point on a shared edge is never missed.
func (r Region) Intersects(o Region) bool {
	return r.Center.X+r.Half.X >= o.Center.X-o.Half.X &&
		r.Center.X-r.Half.X <= o.Center.X+o.Half.X &&
		r.Center.Y+r.Half.Y >= o.Center.Y-o.Half.Y &&
		r.Center.Y-r.Half.Y <= o.Center.Y+o.Half.Y
}

// quadrants splits r at its midpoint in NW, NE, SW, SE order (y grows downward).
func (r Region) quadrants() [4]Region {
	h := r2.Scale(0.5, r.Half)
	return [4]Region{
		{Center: r2.Vec{X: r.Center.X - h.X, Y: r.Center.Y - h.Y}, Half: h},
		{Center: r2.Vec{X: r.Center.X + h.X, Y: r.Center.Y - h.Y}, Half: h},
		{Center: r2.Vec{X: r.Center.X - h.X, Y: r.Center.Y + h.Y}, Half: h},
		{Center: r2.Vec{X: r.Center.X + h.X, Y: r.Center.Y + h.Y}, Half: h},
	}
}
