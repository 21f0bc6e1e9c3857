package game

import (
	"math"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// integrate advances the player one tick: intent acceleration, event wind,
// friction, gravity, jump, and the ground/screen clamps. Pure function of
// the current state, intents, and dt; the only side effects are dust
// particles and the jump cue.
func (g *Game) integrate(in *core.IntentFrame, dt float64) {
	phys := g.cfg.Physics
	p := &g.player
	grounded := p.grounded(phys.GroundHeight)

	friction := phys.GroundFriction
	if g.event.Current == EventBlizzard && grounded {
		friction = phys.IceFriction
	}

	accel := phys.Acceleration
	maxSpeed := p.MaxSpeed
	if g.slowTimer > 0 {
		accel *= g.cfg.Player.SlowFactor
		maxSpeed *= g.cfg.Player.SlowFactor
	}

	moving := false
	if in.MovingLeft {
		p.VX -= accel * dt
		moving = true
	}
	if in.MovingRight {
		p.VX += accel * dt
		moving = true
	}

	if g.event.Current == EventStorm {
		p.VX += float64(g.event.Wind) * phys.WindForce * dt
	}

	// Friction toward zero, never overshooting past it
	if !moving && grounded {
		switch {
		case p.VX > 0:
			p.VX = math.Max(0, p.VX-friction*dt)
		case p.VX < 0:
			p.VX = math.Min(0, p.VX+friction*dt)
		}
	}

	p.VX = core.ClampF(p.VX, -maxSpeed, maxSpeed)
	p.X += p.VX * dt

	if in.TryingToJump && grounded {
		p.VY = phys.JumpStrength
		in.ConsumeJump()
		g.spawnDust(p.X+g.character.ShellW/2, g.worldH-phys.GroundHeight)
		g.cue(core.CueJump)
	}

	// Gravity applies every tick; the ground clamp below recovers it
	p.VY -= phys.Gravity * dt
	p.Y += p.VY * dt
	if p.Y < phys.GroundHeight {
		p.Y = phys.GroundHeight
		p.VY = 0
	}

	// Horizontal screen bounds, zeroing velocity on contact
	maxX := g.worldW - g.character.ShellW
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.X > maxX {
		p.X = maxX
		p.VX = 0
	}
}

// updatePhotosynthesis ticks the heal-while-stationary passive: grounded,
// nearly still, shelled, and below max health accumulates a 1-second timer;
// each expiry heals PhotoLevel HP, carrying fractional overflow.
func (g *Game) updatePhotosynthesis(dt float64) {
	p := &g.player
	if p.PhotoLevel == 0 {
		return
	}

	eligible := p.grounded(g.cfg.Physics.GroundHeight) &&
		core.AbsF(p.VX) < 1 &&
		!p.Naked &&
		p.Health < p.MaxHealth

	if !eligible {
		g.photoTimer = 0
		return
	}

	g.photoTimer += dt
	if g.photoTimer >= 1 {
		g.photoTimer -= 1
		g.healPlayer(p.PhotoLevel)
	}
}
