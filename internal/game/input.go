package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/sim"
)

// keyEdges remembers last tick's key state. Every watched key must be
// observed once per tick, or a held key reads as a fresh press later.
type keyEdges map[ebiten.Key]bool

func (k keyEdges) justPressed(key ebiten.Key, pressed bool) bool {
	jp := pressed && !k[key]
	k[key] = pressed
	return jp
}

// advance applies a toggle request and runs at most one frame for this tick.
// It reports whether a frame was rendered.
func advance(s *sim.Simulation, sched *sim.TickScheduler, toggle bool) bool {
	if toggle {
		// Resuming renders a frame inside Toggle; the frame it schedules waits for the next tick
		return s.Toggle() == sim.Active
	}
	return sched.Fire()
}

// pointerInput is one tick's worth of raw pointer state.
type pointerInput struct {
	touches        int
	touchX, touchY int
	cursorX        int
	cursorY        int
	focused        bool
	width, height  int
}

// pointerTracker turns raw mouse and touch state into the simulation's pointer.
// The mouse only counts once it has moved, and is dropped when it leaves the window.
type pointerTracker struct {
	touching    bool
	mouseActive bool
	primed      bool
	lastX       int
	lastY       int
}

// observe returns the pointer position, or ok=false when there is none.
func (p *pointerTracker) observe(in pointerInput) (x, y float64, ok bool) {
	if in.touches > 0 {
		p.touching = true
		p.mouseActive = false
		return float64(in.touchX), float64(in.touchY), true
	}
	if p.touching {
		// Touch ended; the cursor left behind by the touch is not a mouse move
		p.touching = false
		p.lastX, p.lastY, p.primed = in.cursorX, in.cursorY, true
		return 0, 0, false
	}

	inside := in.focused &&
		in.cursorX >= 0 && in.cursorY >= 0 &&
		in.cursorX < in.width && in.cursorY < in.height
	if !inside {
		p.mouseActive = false
		p.lastX, p.lastY, p.primed = in.cursorX, in.cursorY, true
		return 0, 0, false
	}

	if p.primed && (in.cursorX != p.lastX || in.cursorY != p.lastY) {
		p.mouseActive = true
	}
	p.lastX, p.lastY, p.primed = in.cursorX, in.cursorY, true
	if !p.mouseActive {
		return 0, 0, false
	}
	return float64(in.cursorX), float64(in.cursorY), true
}

// toggleButton is the on-screen start/stop control.
type toggleButton struct {
	hovered bool
	pressed bool
}

func buttonContains(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}

// update tracks hover/press and reports a click: press and release both on the button.
func (b *toggleButton) update(x, y int, justPressed, justReleased bool) bool {
	b.hovered = buttonContains(x, y)
	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}
