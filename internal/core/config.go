package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to derive world dimensions and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// World-unit scale: one terminal cell covers CellPxW x CellPxH logical
// pixels, so the default 80x24 terminal maps to the 800x600 playfield the
// spawn-density baseline is calibrated against.
const (
	CellPxW = 10.0
	CellPxH = 25.0
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WorldW returns the playfield width in logical pixels.
func (c RuntimeConfig) WorldW() float64 {
	return float64(c.ScreenW) * CellPxW
}

// WorldH returns the playfield height in logical pixels.
func (c RuntimeConfig) WorldH() float64 {
	return float64(c.ScreenH) * CellPxH
}

// Run status values. The run is a state machine: idle (attract screen) ->
// playing -> levelup (skill offer) -> playing ... -> gameover (name entry).
const (
	StatusIdle     = "idle"
	StatusPlaying  = "playing"
	StatusLevelUp  = "levelup"
	StatusGameOver = "gameover"
)

// GameState is the per-tick HUD summary handed to collaborators.
// It never exposes mutable simulation internals.
type GameState struct {
	Status     string
	Score      int
	Health     int
	MaxHealth  int
	ExtraLives int
	Month      int
	Year       int
	Season     string
	TimeLeft   float64 // Seconds remaining in the current month
	Event      string  // Active event name, empty if none
	Incoming   string  // Upcoming event warning, empty if none
	Paused     bool
	GameOver   bool
}

// Cue identifies a sound event emitted by the simulation. The core never
// plays audio itself; cues are collected per tick for a collaborator.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueImpact      // Rock/meteor hits the ground
	CueSplash      // Water/snow hits the ground
	CueDamage      // Player took hazard damage
	CueBlock       // Damage fully negated
	CueGolden      // Golden hit scored
	CueHeal        // Water/snow pickup healed the player
	CueShellBreak  // Shell destroyed, player naked
	CueShellReform // Shell healed back
	CueExtraLife   // Banked life consumed
	CueThunder     // Ambient thunder rumble
	CueLightning   // Lightning strike fired
	CueLevelUp     // Month boundary reached
	CueGameOver    // Run ended
)

// String returns the cue name, used by the audio collaborator and logs.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueImpact:
		return "impact"
	case CueSplash:
		return "splash"
	case CueDamage:
		return "damage"
	case CueBlock:
		return "block"
	case CueGolden:
		return "golden"
	case CueHeal:
		return "heal"
	case CueShellBreak:
		return "shellbreak"
	case CueShellReform:
		return "shellreform"
	case CueExtraLife:
		return "extralife"
	case CueThunder:
		return "thunder"
	case CueLightning:
		return "lightning"
	case CueLevelUp:
		return "levelup"
	case CueGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
