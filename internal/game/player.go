package game

import (
	"github.com/lunarbyte/shellstorm/internal/core"
)

// Player is the mutable per-run player state. Position uses world units:
// X is the left edge of the shelled footprint, Y is the height of the feet
// above the world bottom (Y == ground height means standing on the ground).
type Player struct {
	X, Y   float64
	VX, VY float64

	Health int
	Naked  bool // Shell destroyed; any hazard hit is lethal

	CharacterID string

	// Run stats. Baselines come from config, character overrides fold in at
	// run start, skills mutate them at month boundaries.
	MaxHealth         int
	MaxSpeed          float64
	ExtraLives        int
	BlockChance       float64
	BonusHeal         int
	GoldenTouchChance float64
	PhotoLevel        int // Photosynthesis heal-per-second level
}

// newPlayer builds the starting player state for a character.
func newPlayer(base PlayerBaseline, ch Character) Player {
	p := Player{
		CharacterID:       ch.ID,
		MaxHealth:         base.MaxHealth,
		MaxSpeed:          base.MaxSpeed,
		ExtraLives:        base.ExtraLives,
		BlockChance:       base.BlockChance,
		BonusHeal:         base.BonusHeal,
		GoldenTouchChance: base.GoldenTouchChance,
	}

	ov := ch.Overrides
	if ov.MaxHealth != nil {
		p.MaxHealth = *ov.MaxHealth
	}
	if ov.MaxSpeed != nil {
		p.MaxSpeed = *ov.MaxSpeed
	}
	if ov.ExtraLives != nil {
		p.ExtraLives = *ov.ExtraLives
	}
	if ov.BlockChance != nil {
		p.BlockChance = *ov.BlockChance
	}
	if ov.BonusHeal != nil {
		p.BonusHeal = *ov.BonusHeal
	}
	if ov.GoldenTouchChance != nil {
		p.GoldenTouchChance = *ov.GoldenTouchChance
	}

	p.Health = p.MaxHealth
	return p
}

// PlayerBaseline carries the config-derived starting stats.
type PlayerBaseline struct {
	MaxHealth         int
	MaxSpeed          float64
	ExtraLives        int
	BlockChance       float64
	BonusHeal         int
	GoldenTouchChance float64
}

// grounded reports whether the player is standing on the ground.
func (p *Player) grounded(groundHeight float64) bool {
	return p.Y <= groundHeight
}

// hitbox returns the player's collision rectangle in screen-down world
// coordinates. While naked the strictly smaller naked box is used, offset to
// stay centered within the shelled footprint.
func (p *Player) hitbox(ch Character, worldH float64) core.Rect {
	w, h := ch.ShellW, ch.ShellH
	offX := 0.0
	if p.Naked {
		w, h = ch.NakedW, ch.NakedH
		offX = (ch.ShellW - ch.NakedW) / 2
	}
	top := worldH - p.Y - h
	return core.NewRect(p.X+offX, top, w, h)
}
