// Package audio plays the backdrop's toggle chime and optional looping soundtrack.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const defaultSampleRate = beep.SampleRate(44100)

var ErrUnsupported = errors.New("unsupported audio file type")

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a decoder from the file extension.
func decoderFor(path string) (decodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) }, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".flac":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(rc) }, nil
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupported)
	}
}

// Player owns the speaker. The zero value is not usable; call NewPlayer.
type Player struct {
	format   beep.Format
	initDone bool

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	ctrl        *beep.Ctrl
	paused      bool
	track       string
}

func NewPlayer() *Player {
	return &Player{format: beep.Format{SampleRate: defaultSampleRate, NumChannels: 2, Precision: 2}}
}

// Track is the path of the loaded soundtrack, or "".
func (p *Player) Track() string { return p.track }

// ensureSpeaker (re)initializes the speaker for sr.
func (p *Player) ensureSpeaker(sr beep.SampleRate) error {
	if p.initDone && p.format.SampleRate == sr {
		return nil
	}
	if p.initDone {
		speaker.Clear()
	}
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", sr, err)
	}
	p.initDone = true
	p.format.SampleRate = sr
	return nil
}

// Chime plays a short rising tone when turning on and a lower one when turning off.
func (p *Player) Chime(on bool) error {
	if err := p.ensureSpeaker(p.format.SampleRate); err != nil {
		return err
	}
	freq := 440.0
	if on {
		freq = 660.0
	}
	speaker.Play(tone(p.format.SampleRate, freq, 90*time.Millisecond, 0.2))
	return nil
}

// Load replaces the soundtrack with path, looped until the next Load or Close.
func (p *Player) Load(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open soundtrack: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	p.stopCurrent()
	if err := p.ensureSpeaker(format.SampleRate); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return err
	}

	p.currentFile = f
	p.streamer = streamer
	p.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: p.paused}
	p.track = path
	speaker.Play(p.ctrl)

	log.Printf("[AUDIO] looping %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return nil
}

// SetPaused pauses or resumes the soundtrack; it is remembered for later loads.
func (p *Player) SetPaused(paused bool) {
	p.paused = paused
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Close() {
	p.stopCurrent()
	if p.initDone {
		speaker.Close()
		p.initDone = false
	}
}

func (p *Player) stopCurrent() {
	if p.initDone {
		speaker.Clear()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.track = ""
}
