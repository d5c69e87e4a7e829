package termview

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/sim"
)

// App runs the simulation on a tcell screen. Input events and frame ticks are
// handled on the same goroutine, so the simulation never sees concurrent calls.
type App struct {
	cfg     config.Config
	screen  tcell.Screen
	surface *Surface
	sched   *sim.TickScheduler
	sim     *sim.Simulation
	player  *audio.Player

	statusStyle tcell.Style
}

// NewApp wires a simulation to an initialized screen. player may be nil.
func NewApp(screen tcell.Screen, cfg config.Config, player *audio.Player) *App {
	a := &App{
		cfg:     cfg,
		screen:  screen,
		surface: New(screen, cfg.BackgroundColor),
		sched:   &sim.TickScheduler{},
		player:  player,
		statusStyle: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(cfg.NodeColor.R), int32(cfg.NodeColor.G), int32(cfg.NodeColor.B))).
			Background(tcell.NewRGBColor(int32(cfg.BackgroundColor.R), int32(cfg.BackgroundColor.G), int32(cfg.BackgroundColor.B))),
	}
	a.sim = sim.New(cfg, a.surface, a.sched, nil)
	a.sim.OnToggle = a.onToggle
	return a
}

func (a *App) Simulation() *sim.Simulation { return a.sim }

// Start creates the particles and shows the first frame.
func (a *App) Start() {
	a.sim.Start()
	a.render()
	log.Printf("[TERM] started with %d particles on %dx%d cells", len(a.sim.Particles()), a.surface.cols, a.surface.rows)
}

// Tick runs the pending frame, if any, and presents it.
func (a *App) Tick() {
	if a.sched.Fire() {
		a.render()
	}
}

// HandleEvent applies one input event and reports whether the app should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			a.sim.Toggle()
			a.render()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.sim.SetPointer(CellCenter(col, row))
	case *tcell.EventFocus:
		if !ev.Focused {
			a.sim.ClearPointer()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		if a.surface.Sync() {
			a.sim.Resize()
			a.render()
		}
	}
	return true
}

// Run drives ticks at interval until the user quits.
func (a *App) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Tick()
		}
	}
}

func (a *App) render() {
	a.surface.Present()
	status := fmt.Sprintf(" %s | %d particles | frame %d | space: show/hide  q: quit ",
		a.sim.State(), len(a.sim.Particles()), a.sim.Frames())
	a.surface.DrawText(0, 0, status, a.statusStyle)
	a.screen.Show()
}

func (a *App) onToggle(st sim.State) {
	log.Printf("[TERM] particles %s", st)
	if a.player == nil {
		return
	}
	a.player.SetPaused(st == sim.Paused)
	if a.cfg.Chime {
		if err := a.player.Chime(st == sim.Active); err != nil {
			log.Printf("[AUDIO] chime: %v", err)
		}
	}
}
