// Package game hosts the particle simulation in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/sim"
)

type Game struct {
	cfg    config.Config
	sim    *sim.Simulation
	sched  *sim.TickScheduler
	canvas *canvas
	player *audio.Player

	// last size handed out by Layout
	width, height int
	started       bool

	pointer  pointerTracker
	touchIDs []ebiten.TouchID
	button   toggleButton
	keys     keyEdges

	activeTicks uint64
	lastErr     error
}

// New builds the game. player may be nil to run silently.
func New(cfg config.Config, player *audio.Player) *Game {
	g := &Game{
		cfg:     cfg,
		sched:   &sim.TickScheduler{},
		canvas:  newCanvas(config.WindowWidth, config.WindowHeight),
		player:  player,
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		keys:    keyEdges{},
	}
	g.sim = sim.New(cfg, g.canvas, g.sched, nil)
	g.sim.OnToggle = g.onToggle
	return g
}

func (g *Game) Update() error {
	if g.canvas.resize(g.width, g.height) && g.started {
		g.sim.Resize()
	}
	justStarted := !g.started
	if justStarted {
		g.started = true
		g.sim.Start()
		log.Printf("[GAME] started with %d particles on %dx%d", len(g.sim.Particles()), g.width, g.height)
	}

	justPressed := func(k ebiten.Key) bool {
		return g.keys.justPressed(k, ebiten.IsKeyPressed(k))
	}
	space := justPressed(ebiten.KeySpace)
	openKey := justPressed(ebiten.KeyO)
	escape := justPressed(ebiten.KeyEscape)
	q := justPressed(ebiten.KeyQ)

	mouseX, mouseY := ebiten.CursorPosition()
	clicked := g.button.update(mouseX, mouseY,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if buttonContains(ebiten.TouchPosition(id)) {
			clicked = true
		}
	}

	if openKey {
		if err := g.openSoundtrackDialog(); err != nil {
			g.lastErr = err
			log.Printf("[GAME] soundtrack: %v", err)
		}
	}
	if escape || q {
		return ebiten.Termination
	}

	g.trackPointer(mouseX, mouseY)

	toggle := clicked || space
	switch {
	case justStarted && !toggle:
		// Start already rendered this tick's frame
		g.activeTicks++
	case advance(g.sim, g.sched, toggle):
		g.activeTicks++
	}
	return nil
}

func (g *Game) trackPointer(mouseX, mouseY int) {
	in := pointerInput{
		cursorX: mouseX,
		cursorY: mouseY,
		focused: ebiten.IsFocused(),
		width:   g.width,
		height:  g.height,
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		in.touches = len(g.touchIDs)
		in.touchX, in.touchY = ebiten.TouchPosition(g.touchIDs[0])
	}

	if x, y, ok := g.pointer.observe(in); ok {
		g.sim.SetPointer(x, y)
	} else {
		g.sim.ClearPointer()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.BackgroundColor.NRGBA(1))
	if g.canvas.visible {
		screen.DrawImage(g.canvas.img, nil)
	}

	g.drawButton(screen)

	status := fmt.Sprintf("%s | %d particles | %.0f TPS | %s",
		g.sim.State(), len(g.sim.Particles()), ebiten.ActualTPS(),
		formatDuration(ticksToDuration(g.activeTicks, ebiten.TPS())))
	if track := g.trackName(); track != "" {
		status += " | " + track
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 8)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.button.pressed {
		bgColor = color.RGBA{R: 60, G: 30, B: 110, A: 230} // Pressed
	} else if g.button.hovered {
		bgColor = color.RGBA{R: 90, G: 45, B: 150, A: 230} // Hovered
	} else {
		bgColor = color.RGBA{R: 40, G: 30, B: 70, A: 200} // Normal
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	border := g.cfg.ConnectionColor.NRGBA(1)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, border, false)

	text := "Hide particles"
	if g.sim.State() == sim.Paused {
		text = "Show particles"
	}
	textWidth := len(text) * 6 // debug font glyph width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// Layout keeps the canvas the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) onToggle(st sim.State) {
	log.Printf("[GAME] particles %s", st)
	if g.player == nil {
		return
	}
	g.player.SetPaused(st == sim.Paused)
	if g.cfg.Chime {
		if err := g.player.Chime(st == sim.Active); err != nil {
			log.Printf("[AUDIO] chime: %v", err)
		}
	}
}

func (g *Game) trackName() string {
	if g.player == nil {
		return ""
	}
	if t := g.player.Track(); t != "" {
		return filepath.Base(t)
	}
	return ""
}

func (g *Game) openSoundtrackDialog() error {
	if g.player == nil {
		return errors.New("audio is disabled")
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.player.Load(filename); err != nil {
		return err
	}
	g.lastErr = nil
	return nil
}
