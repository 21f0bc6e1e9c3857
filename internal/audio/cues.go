package audio

import (
	"time"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// Play renders one simulation cue as a tone. Unknown cues are silent.
func (p *Player) Play(cue core.Cue) {
	switch cue {
	case core.CueJump:
		p.sweep(300, 600, 80*time.Millisecond, 0.25)
	case core.CueImpact:
		p.tone(90, 70*time.Millisecond, WaveNoise, 0.2)
	case core.CueSplash:
		p.tone(900, 50*time.Millisecond, WaveTriangle, 0.15)
	case core.CueDamage:
		p.tone(140, 140*time.Millisecond, WaveSquare, 0.3)
	case core.CueBlock:
		p.tone(500, 60*time.Millisecond, WaveSquare, 0.2)
	case core.CueGolden:
		p.sweep(800, 1600, 180*time.Millisecond, 0.3)
	case core.CueHeal:
		p.sweep(500, 900, 120*time.Millisecond, 0.2)
	case core.CueShellBreak:
		p.sweep(400, 80, 350*time.Millisecond, 0.35)
	case core.CueShellReform:
		p.sweep(200, 700, 250*time.Millisecond, 0.3)
	case core.CueExtraLife:
		p.sweep(400, 1200, 300*time.Millisecond, 0.35)
	case core.CueThunder:
		p.tone(60, 400*time.Millisecond, WaveNoise, 0.15)
	case core.CueLightning:
		p.tone(1800, 90*time.Millisecond, WaveNoise, 0.3)
	case core.CueLevelUp:
		p.sweep(440, 880, 250*time.Millisecond, 0.3)
	case core.CueGameOver:
		p.sweep(600, 60, 700*time.Millisecond, 0.35)
	}
}

// PlayAll renders a tick's cue batch.
func (p *Player) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}
