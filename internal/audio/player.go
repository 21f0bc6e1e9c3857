// Package audio turns simulation sound cues into synthesized terminal-game
// tones. The simulation only emits core.Cue values; this package owns the
// speaker and all wave generation, so headless and SSH sessions can simply
// not construct a Player.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and renders cues as short synthesized tones.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player. Call Initialize before use.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close in beep.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) tone(freq float64, dur time.Duration, wave WaveType, volume float64) {
	osc := NewOscillator(freq, dur, wave, sampleRate)
	env := NewEnvelope(osc, dur, 2*time.Millisecond, dur/3, sampleRate)
	p.play(NewGain(env, volume))
}

func (p *Player) sweep(from, to float64, dur time.Duration, volume float64) {
	osc := NewSweep(from, to, dur, sampleRate)
	env := NewEnvelope(osc, dur, 2*time.Millisecond, dur/3, sampleRate)
	p.play(NewGain(env, volume))
}
