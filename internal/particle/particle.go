package particle

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
)

// Painter is the one drawing primitive a particle needs.
type Painter interface {
	FillCircle(x, y, radius float64, c config.RGB, alpha float64)
}

// Particle eases toward a drift center that wanders across the surface.
type Particle struct {
	Pos    r2.Vec
	Center r2.Vec

	Radius     float64
	DriftAngle float64
	DriftSpeed float64
	DriftTimer int
}

// New places a particle uniformly at random on a width x height surface.
func New(rng *rand.Rand, width, height float64) *Particle {
	pos := r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
	return &Particle{
		Pos:        pos,
		Center:     pos,
		Radius:     config.MinRadius + rng.Float64()*config.RadiusSpread,
		DriftAngle: rng.Float64() * 2 * math.Pi,
		DriftSpeed: config.MinDriftSpeed + rng.Float64()*config.DriftSpread,
		DriftTimer: rng.IntN(config.DriftTimerSpread),
	}
}

// Location makes particles quadtree items.
func (p *Particle) Location() r2.Vec { return p.Pos }

// Update advances one frame. The drift angle is a random walk and is never clamped.
func (p *Particle) Update(rng *rand.Rand, width, height, speed float64) {
	p.DriftTimer++
	if p.DriftTimer >= config.DriftPeriod {
		p.DriftAngle += (rng.Float64() - 0.5) * math.Pi / 2
		p.DriftTimer = 0
	}

	step := r2.Vec{X: math.Cos(p.DriftAngle), Y: math.Sin(p.DriftAngle)}
	p.Center = r2.Add(p.Center, r2.Scale(p.DriftSpeed*speed, step))
	p.Center.X = wrap(p.Center.X, width)
	p.Center.Y = wrap(p.Center.Y, height)

	p.Pos = r2.Add(p.Pos, r2.Scale(1/config.PursuitDivisor, r2.Sub(p.Center, p.Pos)))
}

func (p *Particle) Draw(dst Painter, c config.RGB, alpha float64) {
	dst.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, c, alpha)
}

// wrap sends a coordinate that left [0, edge] to the opposite edge.
func wrap(v, edge float64) float64 {
	if v < 0 {
		return edge
	}
	if v > edge {
		return 0
	}
	return v
}
