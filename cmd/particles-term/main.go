package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/termview"
)

const (
	logDir      = "logs"
	logFileName = "particles-term.log"
)

// setupLogging sends the log to a file when debug is set and discards it otherwise;
// the terminal itself is busy drawing particles.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	debugFlag := flag.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	fps := flag.Int("fps", 60, "frames per second")
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if *fps < 1 {
		fmt.Fprintf(os.Stderr, "fps must be at least 1\n")
		os.Exit(2)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Runs after the deferred Fini below, so the terminal is already restored
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "particles-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	var player *audio.Player
	if !*mute {
		player = audio.NewPlayer()
		defer player.Close()
		if cfg.Soundtrack != "" {
			if err := player.Load(cfg.Soundtrack); err != nil {
				log.Printf("[AUDIO] soundtrack: %v", err)
			}
		}
	}

	app := termview.NewApp(screen, cfg, player)
	app.Start()
	app.Run(time.Second / time.Duration(*fps))
}
