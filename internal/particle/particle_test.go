package particle

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
)

type circle struct {
	x, y, r float64
	c       config.RGB
	alpha   float64
}

type painter struct {
	circles []circle
}

func (p *painter) FillCircle(x, y, r float64, c config.RGB, alpha float64) {
	p.circles = append(p.circles, circle{x, y, r, c, alpha})
}

func TestNewRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 1000; i++ {
		p := New(rng, 800, 600)
		if p.Pos.X < 0 || p.Pos.X >= 800 || p.Pos.Y < 0 || p.Pos.Y >= 600 {
			t.Fatalf("position %v outside surface", p.Pos)
		}
		if p.Center != p.Pos {
			t.Fatalf("drift center %v should start at position %v", p.Center, p.Pos)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Fatalf("radius %v outside [1,3)", p.Radius)
		}
		if p.DriftSpeed < 0.1 || p.DriftSpeed >= 0.3 {
			t.Fatalf("drift speed %v outside [0.1,0.3)", p.DriftSpeed)
		}
		if p.DriftTimer < 0 || p.DriftTimer >= config.DriftTimerSpread {
			t.Fatalf("drift timer %d outside [0,%d)", p.DriftTimer, config.DriftTimerSpread)
		}
	}
}

func TestCenterStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	const w, h = 320.0, 200.0
	ps := make([]*Particle, 50)
	for i := range ps {
		ps[i] = New(rng, w, h)
	}
	// A large speed multiplier forces frequent wrapping
	for frame := 0; frame < 5000; frame++ {
		for _, p := range ps {
			p.Update(rng, w, h, 40)
			if p.Center.X < 0 || p.Center.X > w || p.Center.Y < 0 || p.Center.Y > h {
				t.Fatalf("frame %d: drift center %v left [0,%v]x[0,%v]", frame, p.Center, w, h)
			}
		}
	}
}

func TestWrapLeftEdge(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 5))
	p := &Particle{
		Pos:        r2.Vec{X: 0, Y: 500},
		Center:     r2.Vec{X: 0, Y: 500},
		Radius:     1,
		DriftAngle: math.Pi,
		DriftSpeed: 0.5,
	}
	p.Update(rng, 1000, 1000, 1)
	if p.Center.X != 1000 {
		t.Errorf("drift center x = %v, want 1000 after stepping to -0.5", p.Center.X)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, edge, want float64
	}{
		{-0.5, 1000, 1000},
		{1000.5, 1000, 0},
		{0, 1000, 0},
		{1000, 1000, 1000},
		{42, 1000, 42},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.edge); got != tt.want {
			t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.edge, got, tt.want)
		}
	}
}

func TestPursuit(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 7))
	p := &Particle{
		Pos:        r2.Vec{X: 100, Y: 100},
		Center:     r2.Vec{X: 200, Y: 100},
		DriftSpeed: 0,
	}
	p.Update(rng, 1000, 1000, 1)
	if math.Abs(p.Pos.X-102) > 1e-9 || p.Pos.Y != 100 {
		t.Errorf("position = %v, want (102, 100)", p.Pos)
	}

	for i := 0; i < 2000; i++ {
		p.Update(rng, 1000, 1000, 1)
	}
	if p.Pos.X >= 200 {
		t.Errorf("position %v overshot the drift center", p.Pos)
	}
	if 200-p.Pos.X > 1e-6 {
		t.Errorf("position %v did not converge toward the drift center", p.Pos)
	}
}

func TestDriftAnglePerturbation(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 9))
	p := &Particle{Center: r2.Vec{X: 50, Y: 50}, DriftAngle: 1}

	for i := 0; i < config.DriftPeriod-1; i++ {
		p.Update(rng, 100, 100, 1)
	}
	if p.DriftAngle != 1 {
		t.Fatalf("angle changed before %d frames: %v", config.DriftPeriod, p.DriftAngle)
	}

	p.Update(rng, 100, 100, 1)
	if p.DriftTimer != 0 {
		t.Errorf("timer = %d after perturbation, want 0", p.DriftTimer)
	}
	if d := math.Abs(p.DriftAngle - 1); d > math.Pi/4 {
		t.Errorf("perturbation %v exceeds pi/4", d)
	}
}

func TestDraw(t *testing.T) {
	p := &Particle{Pos: r2.Vec{X: 3, Y: 4}, Radius: 2.5}
	var dst painter
	white := config.RGB{R: 255, G: 255, B: 255}
	p.Draw(&dst, white, 0.8)

	if len(dst.circles) != 1 {
		t.Fatalf("Draw issued %d circles, want 1", len(dst.circles))
	}
	want := circle{3, 4, 2.5, white, 0.8}
	if dst.circles[0] != want {
		t.Errorf("circle = %+v, want %+v", dst.circles[0], want)
	}
}
