package game

import (
	"fmt"
	"sort"
)

// StatOverrides optionally replaces baseline starting stats for a character.
// Nil pointers mean "use the config default".
type StatOverrides struct {
	MaxHealth         *int
	MaxSpeed          *float64
	ExtraLives        *int
	BlockChance       *float64
	BonusHeal         *int
	GoldenTouchChance *float64
}

// Character is a static descriptor: hitbox dimensions for the shelled and
// naked states plus optional starting-stat overrides. Characters are plain
// data records selected once per run; a lookup table replaces any notion of
// per-character subtypes.
type Character struct {
	ID    string
	Name  string
	Blurb string

	// Shelled hitbox (the default). World px.
	ShellW, ShellH float64
	// Naked hitbox, strictly smaller, centered within the shelled footprint.
	NakedW, NakedH float64

	Overrides StatOverrides
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// characters is the roster lookup table keyed by character id.
var characters = map[string]Character{
	"snail": {
		ID:     "snail",
		Name:   "Garden Snail",
		Blurb:  "The balanced original. No surprises.",
		ShellW: 40, ShellH: 40,
		NakedW: 24, NakedH: 28,
	},
	"boulder": {
		ID:     "boulder",
		Name:   "Boulder Crab",
		Blurb:  "Thick shell, slow legs. Starts with +10 max health and a banked life.",
		ShellW: 50, ShellH: 44,
		NakedW: 30, NakedH: 30,
		Overrides: StatOverrides{
			MaxHealth:  intPtr(30),
			MaxSpeed:   floatPtr(300),
			ExtraLives: intPtr(1),
		},
	},
	"zephyr": {
		ID:     "zephyr",
		Name:   "Zephyr Slug",
		Blurb:  "Fragile but fast, with a lucky streak.",
		ShellW: 34, ShellH: 34,
		NakedW: 20, NakedH: 24,
		Overrides: StatOverrides{
			MaxHealth:         intPtr(14),
			MaxSpeed:          floatPtr(440),
			GoldenTouchChance: floatPtr(0.05),
		},
	},
}

// DefaultCharacterID is used when no character is selected.
const DefaultCharacterID = "snail"

// CharacterByID returns the character descriptor for the given id.
func CharacterByID(id string) (Character, error) {
	c, ok := characters[id]
	if !ok {
		return Character{}, fmt.Errorf("game: unknown character %q", id)
	}
	return c, nil
}

// Characters returns all characters sorted by id.
func Characters() []Character {
	out := make([]Character, 0, len(characters))
	for _, c := range characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
