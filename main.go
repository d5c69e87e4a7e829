package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/game"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var player *audio.Player
	if !*mute {
		player = audio.NewPlayer()
		defer player.Close()
		if cfg.Soundtrack != "" {
			// Non-fatal, the backdrop runs fine without music
			if err := player.Load(cfg.Soundtrack); err != nil {
				log.Printf("[AUDIO] soundtrack: %v", err)
			}
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Particle Backdrop - Space: show/hide, O: soundtrack, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("game exited: %v", err)
		if player != nil {
			player.Close()
		}
		os.Exit(1)
	}
}
