package game

import (
	"github.com/lunarbyte/shellstorm/internal/core"
)

// ParticleKind classifies a cosmetic particle.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticleImpact
	ParticleSplash
	ParticleDrift  // Blizzard snow
	ParticleStreak // Storm wind streaks
)

// Particle is a short-lived cosmetic entity in screen-down world coords.
type Particle struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64
	Life   float64 // Seconds remaining
}

// FloatingText is a rising damage/heal/score indicator.
type FloatingText struct {
	X, Y  float64
	Text  string
	Color core.Color
	Life  float64
}

// ShellPiece is one physics-driven fragment of a broken shell.
type ShellPiece struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

const (
	particleLife = 0.8
	floatLife    = 1.2
	pieceLife    = 1.5
	reformTime   = 0.6
)

func (g *Game) addParticle(p Particle) {
	g.particles = append(g.particles, p)
}

// spawnDust emits a small burst at ground level (jumps, earthquake rumble).
func (g *Game) spawnDust(x, groundY float64) {
	for i := 0; i < 4; i++ {
		g.addParticle(Particle{
			Kind: ParticleDust,
			X:    x + g.rng.Range(-15, 15),
			Y:    groundY - g.rng.Range(0, 10),
			VX:   g.rng.Range(-40, 40),
			VY:   g.rng.Range(-60, -10),
			Life: particleLife,
		})
	}
}

// spawnImpact emits rock/meteor shatter fragments.
func (g *Game) spawnImpact(x, y float64) {
	for i := 0; i < 6; i++ {
		g.addParticle(Particle{
			Kind: ParticleImpact,
			X:    x + g.rng.Range(-10, 10),
			Y:    y + g.rng.Range(-10, 0),
			VX:   g.rng.Range(-120, 120),
			VY:   g.rng.Range(-180, -40),
			Life: particleLife,
		})
	}
}

// spawnSplash emits water/snow droplets.
func (g *Game) spawnSplash(x, y float64) {
	for i := 0; i < 5; i++ {
		g.addParticle(Particle{
			Kind: ParticleSplash,
			X:    x + g.rng.Range(-8, 8),
			Y:    y + g.rng.Range(-6, 0),
			VX:   g.rng.Range(-80, 80),
			VY:   g.rng.Range(-140, -30),
			Life: particleLife * 0.7,
		})
	}
}

// spawnDrift stochastically emits blizzard snow drifting sideways.
func (g *Game) spawnDrift(dt float64) {
	if !g.rng.Chance(20 * dt) {
		return
	}
	g.addParticle(Particle{
		Kind: ParticleDrift,
		X:    g.rng.Range(0, g.worldW),
		Y:    0,
		VX:   g.rng.Range(-120, -40),
		VY:   g.rng.Range(80, 160),
		Life: 4,
	})
}

// spawnStreaks stochastically emits storm wind streaks in the wind direction.
func (g *Game) spawnStreaks(dt float64, wind int) {
	if !g.rng.Chance(12 * dt) {
		return
	}
	x := 0.0
	if wind < 0 {
		x = g.worldW
	}
	g.addParticle(Particle{
		Kind: ParticleStreak,
		X:    x,
		Y:    g.rng.Range(0, g.worldH*0.7),
		VX:   float64(wind) * g.rng.Range(300, 500),
		VY:   0,
		Life: 3,
	})
}

// breakShell spawns the two shell fragments and resets reform progress.
func (g *Game) breakShell() {
	p := g.player
	cx := p.X + g.character.ShellW/2
	cy := g.worldH - p.Y - g.character.ShellH/2
	g.shellPieces = []ShellPiece{
		{X: cx, Y: cy, VX: -140, VY: -260, Life: pieceLife},
		{X: cx, Y: cy, VX: 140, VY: -300, Life: pieceLife},
	}
	g.reformTimer = 0
}

// reformShell starts the shell-reform animation unless one is in progress.
func (g *Game) reformShell() {
	if g.reformTimer > 0 {
		return
	}
	g.reformTimer = reformTime
	g.shellPieces = nil
}

// decayTransients ages shell fragments, the reform animation, the slow
// status, and the lightning flash.
func (g *Game) decayTransients(dt float64) {
	if g.slowTimer > 0 {
		g.slowTimer -= dt
		if g.slowTimer < 0 {
			g.slowTimer = 0
		}
	}
	if g.reformTimer > 0 {
		g.reformTimer -= dt
		if g.reformTimer < 0 {
			g.reformTimer = 0
		}
	}
	if g.flashTimer > 0 {
		g.flashTimer -= dt
		if g.flashTimer < 0 {
			g.flashTimer = 0
		}
	}

	if len(g.shellPieces) > 0 {
		gravity := g.cfg.Physics.Gravity
		next := make([]ShellPiece, 0, len(g.shellPieces))
		for _, piece := range g.shellPieces {
			piece.Life -= dt
			if piece.Life <= 0 {
				continue
			}
			piece.VY += gravity * dt * 0.5 // Fragments fall lazily
			piece.X += piece.VX * dt
			piece.Y += piece.VY * dt
			next = append(next, piece)
		}
		g.shellPieces = next
	}
}

// decayParticles ages and compacts particles and floating texts, enforcing
// the global particle cap by dropping the oldest first.
func (g *Game) decayParticles(dt float64) {
	gravity := g.cfg.Physics.Gravity

	nextParticles := make([]Particle, 0, len(g.particles))
	for _, p := range g.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		switch p.Kind {
		case ParticleDrift, ParticleStreak:
			// Constant-velocity weather particles
		default:
			p.VY += gravity * dt * 0.4
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Y > g.worldH || p.X < -20 || p.X > g.worldW+20 {
			continue
		}
		nextParticles = append(nextParticles, p)
	}
	if over := len(nextParticles) - g.cfg.Particles.Max; over > 0 {
		nextParticles = nextParticles[over:]
	}
	g.particles = nextParticles

	nextFloats := make([]FloatingText, 0, len(g.floats))
	for _, f := range g.floats {
		f.Life -= dt
		if f.Life <= 0 {
			continue
		}
		f.Y -= 40 * dt // Indicators rise
		nextFloats = append(nextFloats, f)
	}
	g.floats = nextFloats
}

// addFloat queues a rising numeric indicator at a world position.
func (g *Game) addFloat(x, y float64, text string, color core.Color) {
	g.floats = append(g.floats, FloatingText{
		X: x, Y: y,
		Text:  text,
		Color: color,
		Life:  floatLife,
	})
}
