// Package audio synthesizes and plays the game's sound effects. Everything is
// generated at runtime from oscillators; there are no asset files. A Player
// that failed to initialize (no audio device, headless host) degrades to
// no-ops so the game never depends on a working speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const defaultVolume = 0.5

// Player owns the speaker and mixes one-shot effects into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player. Call Initialize before playing.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers. The speaker itself has no
// close; clearing the mixer is enough to stop output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.mixer.Clear()
	p.initialized = false
}

// SetMuted toggles playback without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// IsMuted reports whether playback is suppressed.
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// play mixes a one-shot streamer in; dropped silently when not initialized.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(s)
}

// PlayEat plays the apple-eaten chirp.
func (p *Player) PlayEat() {
	p.play(CreateEatSound(sampleRate, defaultVolume))
}

// PlayDeath plays the game-over buzz.
func (p *Player) PlayDeath() {
	p.play(CreateDeathSound(sampleRate, defaultVolume))
}

// PlayWin plays the board-cleared arpeggio.
func (p *Player) PlayWin() {
	p.play(CreateWinSound(sampleRate, defaultVolume))
}
