package game

import (
	"math"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// ElementKind classifies a falling element.
type ElementKind int

const (
	ElementRock ElementKind = iota
	ElementWater
	ElementSnow
	ElementMeteor
)

// String returns the element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementRock:
		return "rock"
	case ElementWater:
		return "water"
	case ElementSnow:
		return "snow"
	case ElementMeteor:
		return "meteor"
	default:
		return "unknown"
	}
}

// Hazard reports whether colliding with this element damages the player.
func (k ElementKind) Hazard() bool {
	return k == ElementRock || k == ElementMeteor
}

// Element is a falling entity. Y uses screen-down world coordinates:
// negative means above the visible area, increasing Y means falling.
type Element struct {
	ID    int
	Kind  ElementKind
	X, Y  float64
	Size  float64
	Speed float64 // px/sec downward
}

// rect returns the element's AABB in screen-down world coordinates.
func (e Element) rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// hazardInterval computes the seconds between hazard spawns for the current
// month, viewport width, and event. The interval decays geometrically with
// the month counter so the spawn rate strictly increases but never diverges.
func (g *Game) hazardInterval() float64 {
	cfg := g.cfg.Spawn
	interval := cfg.HazardBaseInterval * math.Pow(cfg.IntervalDecay, float64(g.month-1))

	// Wider screens spawn more often to keep per-pixel density constant
	interval /= g.worldW / cfg.BaselineWidth

	switch g.event.Current {
	case EventEarthquake:
		interval /= g.cfg.Events.QuakeIntervalDiv
	case EventThunderstorm:
		interval *= g.cfg.Events.ThunderIntervalMul
	case EventMeteorShower:
		interval *= g.cfg.Events.MeteorIntervalMul
	}
	return interval
}

// resourceInterval computes the seconds between water/snow spawns.
func (g *Game) resourceInterval() float64 {
	cfg := g.cfg.Spawn
	interval := cfg.ResourceBaseInterval * g.waterScale
	interval /= g.worldW / cfg.BaselineWidth
	if g.event.Current == EventThunderstorm {
		interval /= g.cfg.Events.ResourceThunderDiv
	}
	return interval
}

// spawnElements emits new hazards and resources when their intervals elapse.
func (g *Game) spawnElements() {
	if g.clock-g.lastHazardSpawn > g.hazardInterval() {
		g.lastHazardSpawn = g.clock
		g.elements = append(g.elements, g.makeHazard())
	}

	if g.clock-g.lastResourceSpawn > g.resourceInterval() {
		g.lastResourceSpawn = g.clock
		g.elements = append(g.elements, g.makeResource())
	}
}

// makeHazard builds a rock (or meteor, during a meteor shower).
func (g *Game) makeHazard() Element {
	cfg := g.cfg.Spawn

	maxSize := cfg.MaxSize
	if g.event.Current == EventEarthquake {
		maxSize = cfg.QuakeMaxSize
	}
	size := g.rng.Range(cfg.MinSize, maxSize)

	// Non-linear difficulty scaling: speed grows with sqrt of the month so
	// late months escalate without becoming undodgeable.
	speedMult := 1 + math.Sqrt(math.Max(0, float64(g.month-1)))*cfg.SpeedScale
	speed := g.rng.Range(cfg.MinSpeed, cfg.MaxSpeed) * speedMult

	kind := ElementRock
	if g.event.Current == EventMeteorShower {
		kind = ElementMeteor
		speed *= g.cfg.Events.MeteorSpeedMult
	}

	return g.newElement(kind, size, speed)
}

// makeResource builds a water drop (snow in winter), size-scaled by season.
func (g *Game) makeResource() Element {
	cfg := g.cfg.Spawn

	size := g.rng.Range(cfg.MinSize, cfg.MaxSize)
	switch g.season() {
	case SeasonSummer:
		size *= g.cfg.Heal.SummerSizeScale
	case SeasonAutumn:
		size *= g.cfg.Heal.AutumnSizeScale
	}

	kind := ElementWater
	if g.season() == SeasonWinter {
		kind = ElementSnow
	}

	speed := g.rng.Range(cfg.MinSpeed, cfg.MaxSpeed)
	return g.newElement(kind, size, speed)
}

// newElement places a fresh element just above the visible area.
func (g *Game) newElement(kind ElementKind, size, speed float64) Element {
	g.nextElementID++
	return Element{
		ID:    g.nextElementID,
		Kind:  kind,
		X:     g.rng.Range(0, math.Max(0, g.worldW-size)),
		Y:     -size,
		Size:  size,
		Speed: speed,
	}
}

// groundContact handles an element reaching the ground without hitting the
// player: purely presentational splash/impact effects, plus the burning
// patch a meteor leaves behind.
func (g *Game) groundContact(e Element) {
	groundY := g.worldH - g.cfg.Physics.GroundHeight
	switch e.Kind {
	case ElementRock:
		g.spawnImpact(e.X+e.Size/2, groundY)
		g.cue(core.CueImpact)
	case ElementMeteor:
		g.spawnImpact(e.X+e.Size/2, groundY)
		g.addBurningPatch(e)
		g.cue(core.CueImpact)
	case ElementWater, ElementSnow:
		g.spawnSplash(e.X+e.Size/2, groundY)
		g.cue(core.CueSplash)
	}
}
