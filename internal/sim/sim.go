// Package sim drives the particle backdrop one frame at a time.
//
// A Simulation owns its particles and rebuilds a quadtree over them every
// frame. It draws only through a Surface and advances only when its
// FrameScheduler fires, so hosts decide how frames are paced and painted.
package sim

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/particle"
	"github.com/iburimskiy/particle-backdrop/internal/quadtree"
)

type State int

const (
	Active State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

type Simulation struct {
	cfg     config.Config
	surface Surface
	sched   FrameScheduler
	rng     *rand.Rand

	particles []*particle.Particle
	state     State
	frames    uint64

	pointer    r2.Vec
	hasPointer bool

	// reused between neighbor queries
	candidates []*particle.Particle

	// OnToggle, if set, is called after every state change.
	OnToggle func(State)
}

// NewRand seeds a generator from seed, or from the clock when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New returns a simulation in the Active state with no particles yet; call Start or Init.
func New(cfg config.Config, surface Surface, sched FrameScheduler, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	return &Simulation{
		cfg:     cfg,
		surface: surface,
		sched:   sched,
		rng:     rng,
		state:   Active,
	}
}

func (s *Simulation) State() State                    { return s.state }
func (s *Simulation) Particles() []*particle.Particle { return s.particles }
func (s *Simulation) Frames() uint64                  { return s.frames }
func (s *Simulation) Config() config.Config           { return s.cfg }

// Init replaces every particle with a fresh set sized to the surface area.
func (s *Simulation) Init() {
	w, h := s.surface.Size()
	n := s.cfg.ParticleCount(w, h)
	s.particles = make([]*particle.Particle, n)
	for i := range s.particles {
		s.particles[i] = particle.New(s.rng, w, h)
	}
}

// Start initializes the particles and renders the first frame.
func (s *Simulation) Start() {
	s.Init()
	if s.state == Active {
		s.Animate()
	}
}

// Resize rebuilds the particle set for the surface's current size.
// Old particles are discarded, not rescaled.
func (s *Simulation) Resize() {
	s.Init()
	w, h := s.surface.Size()
	log.Printf("[SIM] surface resized to %.0fx%.0f, %d particles", w, h, len(s.particles))
}

func (s *Simulation) SetPointer(x, y float64) {
	s.pointer = r2.Vec{X: x, Y: y}
	s.hasPointer = true
}

func (s *Simulation) ClearPointer() {
	s.hasPointer = false
}

// Pointer returns the last pointer position and whether one is known.
func (s *Simulation) Pointer() (r2.Vec, bool) {
	return s.pointer, s.hasPointer
}

// Toggle flips between Active and Paused and returns the new state.
func (s *Simulation) Toggle() State {
	if s.state == Active {
		s.state = Paused
		s.sched.CancelPending()
		s.surface.Clear()
		s.surface.SetVisible(false)
	} else {
		s.state = Active
		s.surface.SetVisible(true)
		s.Animate()
	}
	if s.OnToggle != nil {
		s.OnToggle(s.state)
	}
	return s.state
}

// Animate renders one frame and, while Active, schedules the next.
func (s *Simulation) Animate() {
	w, h := s.surface.Size()

	// Translucent fill leaves fading trails
	s.surface.FillRect(0, 0, w, h, s.cfg.BackgroundColor, s.cfg.TrailAlpha)

	// Indexed before the update; queries below read the updated positions
	qt := quadtree.New[*particle.Particle](quadtree.NewRegion(w/2, h/2, w/2, h/2), s.cfg.QuadCapacity)
	for _, p := range s.particles {
		qt.Insert(p)
	}

	for _, p := range s.particles {
		p.Update(s.rng, w, h, s.cfg.SpeedMultiplier)
	}

	if s.hasPointer {
		s.connectPointer()
	}
	s.connectParticles(qt)

	for _, p := range s.particles {
		p.Draw(s.surface, s.cfg.NodeColor, s.cfg.NodeAlpha)
	}

	s.frames++
	if s.state == Active {
		s.sched.ScheduleNext(s.Animate)
	}
}

func (s *Simulation) connectPointer() {
	radius := s.cfg.PointerRadius
	r2max := radius * radius
	for _, p := range s.particles {
		d2 := r2.Norm2(r2.Sub(p.Pos, s.pointer))
		if d2 >= r2max {
			continue
		}
		alpha := (1 - math.Sqrt(d2)/radius) * config.PointerLineScale
		s.surface.StrokeLine(s.pointer.X, s.pointer.Y, p.Pos.X, p.Pos.Y,
			config.PointerLineWidth, s.cfg.PointerColor, alpha)
	}
}

func (s *Simulation) connectParticles(qt *quadtree.Tree[*particle.Particle]) {
	radius := s.cfg.ConnectionRadius
	r2max := radius * radius
	for _, p := range s.particles {
		s.candidates = qt.QueryInto(quadtree.Square(p.Pos, radius), s.candidates[:0])
		for _, o := range s.candidates {
			if o == p {
				continue
			}
			d2 := r2.Norm2(r2.Sub(p.Pos, o.Pos))
			if d2 >= r2max {
				continue
			}
			alpha := (1 - math.Sqrt(d2)/radius) * config.ConnectionLineScale
			s.surface.StrokeLine(p.Pos.X, p.Pos.Y, o.Pos.X, o.Pos.Y,
				config.ConnectionLineWidth, s.cfg.ConnectionColor, alpha)
		}
	}
}
