package game

import (
	"math"

	"github.com/lunarbyte/shellstorm/internal/config"
	"github.com/lunarbyte/shellstorm/internal/core"
)

// Game is the full deterministic simulation for one session. All randomness
// flows through the seeded RNG, all time flows through Step's dt, so a given
// (seed, intent sequence, dt sequence) always replays to the same state.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *RNG

	worldW, worldH float64

	status string
	paused bool

	character Character
	player    Player

	elements      []Element
	nextElementID int

	clock             float64 // Total simulated seconds this run
	lastHazardSpawn   float64
	lastResourceSpawn float64

	month       int
	timeInMonth float64

	event          eventState
	waterScale     float64 // Soothing Rains multiplier on the resource interval
	slowTimer      float64 // Snow slow status, seconds remaining
	photoTimer     float64 // Photosynthesis stillness accumulator
	flashTimer     float64 // Lightning screen flash, seconds remaining
	burnAccum      float64
	burnFlushTimer float64

	scoreF         float64
	rocksDestroyed int

	offers   []SkillID
	acquired []SkillID

	particles   []Particle
	floats      []FloatingText
	shellPieces []ShellPiece
	reformTimer float64

	idleTimer float64
	cues      []core.Cue
}

// New creates a simulation in the idle (attract) state.
func New(cfg config.Config, rt core.RuntimeConfig) *Game {
	g := &Game{
		cfg:     cfg,
		runtime: rt,
		worldW:  rt.WorldW(),
		worldH:  rt.WorldH(),
	}
	g.Reset()
	return g
}

// Reset returns the simulation to the idle state, reseeding the RNG so the
// next run replays deterministically from the same runtime seed.
func (g *Game) Reset() {
	g.rng = NewRNG(g.runtime.Seed)
	g.status = core.StatusIdle
	g.paused = false

	g.character = characters[DefaultCharacterID]
	g.player = newPlayer(g.baseline(), g.character)
	g.player.X = g.worldW/2 - g.character.ShellW/2
	g.player.Y = g.cfg.Physics.GroundHeight

	g.elements = nil
	g.nextElementID = 0
	g.clock = 0
	g.lastHazardSpawn = 0
	g.lastResourceSpawn = 0
	g.month = 1
	g.timeInMonth = 0
	g.event = eventState{}
	g.waterScale = 1
	g.slowTimer = 0
	g.photoTimer = 0
	g.flashTimer = 0
	g.burnAccum = 0
	g.burnFlushTimer = 0
	g.scoreF = 0
	g.rocksDestroyed = 0
	g.offers = nil
	g.acquired = nil
	g.particles = nil
	g.floats = nil
	g.shellPieces = nil
	g.reformTimer = 0
	g.idleTimer = 0
	g.cues = nil
}

func (g *Game) baseline() PlayerBaseline {
	return PlayerBaseline{
		MaxHealth:         g.cfg.Player.MaxHealth,
		MaxSpeed:          g.cfg.Physics.MaxSpeed,
		ExtraLives:        g.cfg.Player.ExtraLives,
		BlockChance:       g.cfg.Player.BlockChance,
		BonusHeal:         g.cfg.Player.BonusHeal,
		GoldenTouchChance: g.cfg.Player.GoldenTouchChance,
	}
}

// SelectCharacter swaps the roster character. Only meaningful before Start.
func (g *Game) SelectCharacter(id string) error {
	ch, err := CharacterByID(id)
	if err != nil {
		return err
	}
	g.character = ch
	g.player = newPlayer(g.baseline(), ch)
	g.player.X = g.worldW/2 - ch.ShellW/2
	g.player.Y = g.cfg.Physics.GroundHeight
	return nil
}

// Start begins a run from the idle or gameover state.
func (g *Game) Start() {
	id := g.character.ID
	g.Reset()
	_ = g.SelectCharacter(id)
	g.status = core.StatusPlaying
}

// TogglePause flips the pause flag while playing.
func (g *Game) TogglePause() {
	if g.status == core.StatusPlaying {
		g.paused = !g.paused
	}
}

// Character returns the selected roster character.
func (g *Game) Character() Character {
	return g.character
}

// Offers returns the current level-up skill offers, nil outside the
// levelup state.
func (g *Game) Offers() []SkillID {
	if g.status != core.StatusLevelUp {
		return nil
	}
	return g.offers
}

// Acquired returns the skills picked so far this run, in pick order.
func (g *Game) Acquired() []SkillID {
	return g.acquired
}

// ChooseSkill applies offer i, resets the month clock, and resumes play.
// Out-of-range picks are ignored.
func (g *Game) ChooseSkill(i int) {
	if g.status != core.StatusLevelUp || i < 0 || i >= len(g.offers) {
		return
	}
	id := g.offers[i]
	g.applySkill(id)
	g.acquired = append(g.acquired, id)
	g.offers = nil
	g.timeInMonth = 0
	g.status = core.StatusPlaying
}

// Step advances the simulation by dt seconds and returns the resulting HUD
// state plus any sound cues the tick produced. dt is clamped so a stalled
// host never produces a tunnel-through mega-step.
func (g *Game) Step(in *core.IntentFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	if dt > g.cfg.Physics.MaxDelta {
		dt = g.cfg.Physics.MaxDelta
	}
	g.cues = g.cues[:0]

	switch g.status {
	case core.StatusIdle:
		g.idleTimer += dt
	case core.StatusPlaying:
		if !g.paused {
			g.updatePlaying(in, dt)
		}
	case core.StatusLevelUp, core.StatusGameOver:
		// Frozen; cosmetic transients keep decaying so overlays settle
		g.decayTransients(dt)
		g.decayParticles(dt)
	}

	cues := make([]core.Cue, len(g.cues))
	copy(cues, g.cues)
	return core.StepResult{State: g.State(), Cues: cues}
}

// updatePlaying is the per-tick pipeline for an active run. The month
// boundary is checked before anything else so the level-up pause lands
// exactly at the month edge instead of one tick past it.
func (g *Game) updatePlaying(in *core.IntentFrame, dt float64) {
	if g.timeInMonth+dt >= g.cfg.Progression.MonthLength {
		g.levelUp()
		return
	}

	g.clock += dt
	g.timeInMonth += dt

	g.decayTransients(dt)
	g.integrate(in, dt)
	g.updatePhotosynthesis(dt)
	g.updateEvents(dt)
	g.spawnElements()

	g.resolveElements(dt)
	if g.status != core.StatusPlaying {
		return
	}
	g.resolveLightning()
	if g.status != core.StatusPlaying {
		return
	}
	g.resolveBurning(dt)
	if g.status != core.StatusPlaying {
		return
	}

	g.decayParticles(dt)
	g.scoreF += g.cfg.Progression.ScorePerSecond * dt
}

// levelUp crosses a month boundary: advance the calendar, clear the old
// event and its transients, roll the skill offers, and enter the new
// month's event so its name shows behind the level-up overlay.
func (g *Game) levelUp() {
	g.month++
	g.clearEvent()
	g.offers = g.pickOffers(g.month)
	g.status = core.StatusLevelUp
	g.maybeEnterEvent()
	g.cue(core.CueLevelUp)
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// season returns the current season.
func (g *Game) season() Season {
	return seasonOf(g.month)
}

// Score returns the current run score as a whole number.
func (g *Game) Score() int {
	return int(math.Floor(g.scoreF))
}

// State summarizes the simulation for HUD rendering and collaborators.
func (g *Game) State() core.GameState {
	timeLeft := g.cfg.Progression.MonthLength - g.timeInMonth
	if timeLeft < 0 {
		timeLeft = 0
	}
	return core.GameState{
		Status:     g.status,
		Score:      g.Score(),
		Health:     g.player.Health,
		MaxHealth:  g.player.MaxHealth,
		ExtraLives: g.player.ExtraLives,
		Month:      g.month,
		Year:       yearOf(g.month),
		Season:     g.season().String(),
		TimeLeft:   timeLeft,
		Event:      g.event.Current.String(),
		Incoming:   g.event.Incoming.String(),
		Paused:     g.paused,
		GameOver:   g.status == core.StatusGameOver,
	}
}

// RunResult is the persisted summary of a finished run.
type RunResult struct {
	Name           string    `json:"name"`
	CharacterID    string    `json:"character"`
	Score          int       `json:"score"`
	Months         int       `json:"months"`
	RocksDestroyed int       `json:"rocksDestroyed"`
	MaxHealth      int       `json:"maxHealth"`
	MaxSpeed       float64   `json:"maxSpeed"`
	Skills         []SkillID `json:"skills"`
}

// Result builds the persistable summary for the current run under the
// given player name.
func (g *Game) Result(name string) RunResult {
	skills := make([]SkillID, len(g.acquired))
	copy(skills, g.acquired)
	return RunResult{
		Name:           name,
		CharacterID:    g.character.ID,
		Score:          g.Score(),
		Months:         g.month,
		RocksDestroyed: g.rocksDestroyed,
		MaxHealth:      g.player.MaxHealth,
		MaxSpeed:       g.player.MaxSpeed,
		Skills:         skills,
	}
}
