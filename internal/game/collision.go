package game

import (
	"fmt"
	"math"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// resolveElements advances every falling element and resolves at most one
// player collision per tick: the first intersecting element in iteration
// order wins, remaining elements are still checked for ground contact but
// never for collision. The next-tick element list is rebuilt rather than
// mutated in place.
func (g *Game) resolveElements(dt float64) {
	playerBox := g.player.hitbox(g.character, g.worldH)
	groundLine := g.worldH - g.cfg.Physics.GroundHeight

	next := make([]Element, 0, len(g.elements))
	collided := false

	for i, e := range g.elements {
		e.Y += e.Speed * dt

		if !collided && g.status == core.StatusPlaying && e.rect().Intersects(playerBox) {
			collided = true
			g.handleCollision(e)
			if g.status != core.StatusPlaying {
				// Fatal hit: no further processing this tick, keep the rest
				for _, rest := range g.elements[i+1:] {
					rest.Y += rest.Speed * dt
					next = append(next, rest)
				}
				g.elements = next
				return
			}
			continue
		}

		if e.Y+e.Size >= groundLine {
			g.groundContact(e)
			continue
		}

		next = append(next, e)
	}

	g.elements = next
}

// handleCollision applies the effect of the player touching an element.
func (g *Game) handleCollision(e Element) {
	switch e.Kind {
	case ElementRock, ElementMeteor:
		g.collideHazard(e)
	case ElementWater, ElementSnow:
		g.collideResource(e)
	}
}

// collideHazard resolves a rock/meteor hit: lethal while naked, otherwise
// points (with a golden-touch roll), then the block/damage roll.
func (g *Game) collideHazard(e Element) {
	p := &g.player

	if p.Naked {
		g.gameOver()
		return
	}

	points := int(math.Round(e.Size / 10))
	if g.rng.Chance(p.GoldenTouchChance) {
		points *= 10
		g.addFloat(e.X, e.Y, fmt.Sprintf("+%d", points), core.ColorBrightYellow)
		g.cue(core.CueGolden)
	} else {
		g.addFloat(e.X, e.Y, fmt.Sprintf("+%d", points), core.ColorWhite)
	}
	g.scoreF += float64(points)
	g.rocksDestroyed++
	g.spawnImpact(e.X+e.Size/2, e.Y+e.Size)

	if g.rng.Chance(p.BlockChance) {
		g.addFloat(p.X, g.worldH-p.Y-g.character.ShellH, "0", core.ColorCyan)
		g.cue(core.CueBlock)
		return
	}

	damage := int(math.Round(e.Size / 10))
	g.damagePlayer(damage)
}

// collideResource resolves a water/snow pickup: always heals, snow also
// applies the slow status. Healing back above zero is the only way to
// recover a broken shell mid-run.
func (g *Game) collideResource(e Element) {
	heal := float64(g.cfg.Heal.WaterHeal)
	switch g.season() {
	case SeasonSummer:
		heal *= g.cfg.Heal.SummerHealScale
	case SeasonAutumn:
		heal *= g.cfg.Heal.AutumnHealScale
	}
	amount := int(math.Round(heal)) + g.player.BonusHeal

	g.spawnSplash(e.X+e.Size/2, e.Y+e.Size)
	g.healPlayer(amount)

	if e.Kind == ElementSnow {
		g.slowTimer = g.cfg.Heal.SlowDuration
	}
}

// damagePlayer runs the shared damage cascade used by hazards, lightning,
// and burning patches: subtract health, then either consume an extra life
// (full restore, shell kept) or pin health at zero and break the shell.
func (g *Game) damagePlayer(damage int) {
	if damage <= 0 {
		return
	}
	p := &g.player

	p.Health -= damage
	g.addFloat(p.X+g.character.ShellW/2, g.worldH-p.Y-g.character.ShellH, fmt.Sprintf("-%d", damage), core.ColorBrightRed)
	g.cue(core.CueDamage)

	if p.Health > 0 {
		return
	}

	if p.ExtraLives > 0 {
		p.ExtraLives--
		p.Health = p.MaxHealth
		p.Naked = false
		g.cue(core.CueExtraLife)
		return
	}

	p.Health = 0
	if !p.Naked {
		p.Naked = true
		g.breakShell()
		g.cue(core.CueShellBreak)
	}
}

// healPlayer raises health, clamped to max, and reforms the shell if the
// heal brings a naked player back above zero.
func (g *Game) healPlayer(amount int) {
	if amount <= 0 {
		return
	}
	p := &g.player

	wasNaked := p.Naked
	p.Health = core.Clamp(p.Health+amount, 0, p.MaxHealth)
	g.addFloat(p.X+g.character.ShellW/2, g.worldH-p.Y-g.character.ShellH, fmt.Sprintf("+%d", amount), core.ColorBrightGreen)
	g.cue(core.CueHeal)

	if wasNaked && p.Health > 0 {
		p.Naked = false
		g.reformShell()
		g.cue(core.CueShellReform)
	}
}

// gameOver transitions the run to its terminal state. This is a normal
// state transition, not an error path.
func (g *Game) gameOver() {
	if g.status == core.StatusGameOver {
		return
	}
	g.status = core.StatusGameOver
	g.cue(core.CueGameOver)
}
