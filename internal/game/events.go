package game

import (
	"math"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// EventKind identifies a special weather event.
type EventKind int

const (
	EventNone EventKind = iota
	EventStorm
	EventThunderstorm
	EventEarthquake
	EventBlizzard
	EventMeteorShower
)

// String returns the event name, empty for EventNone.
func (k EventKind) String() string {
	switch k {
	case EventStorm:
		return "storm"
	case EventThunderstorm:
		return "thunderstorm"
	case EventEarthquake:
		return "earthquake"
	case EventBlizzard:
		return "blizzard"
	case EventMeteorShower:
		return "meteor shower"
	default:
		return ""
	}
}

// LightningStrike is a scheduled thunderstorm strike: a warning window
// followed by a short firing window, then discarded.
type LightningStrike struct {
	X, Width float64
	WarnAt   float64 // Sim-clock seconds the warning became visible
	StrikeAt float64 // Sim-clock seconds the strike fires
	Struck   bool
}

// BurningPatch is a ground hazard left by a meteor impact.
type BurningPatch struct {
	X, Width  float64
	Remaining float64 // Lifespan seconds left
}

// eventState holds the active event and its transient collections.
type eventState struct {
	Current  EventKind
	Incoming EventKind // Warning shown in the last seconds before an event month
	Wind     int       // -1 left, +1 right, 0 none (storm only)
	Strikes  []LightningStrike
	Patches  []BurningPatch
	ShakeX   float64
	ShakeY   float64
}

// scheduledEvent returns the event hosted by the given month, assuming it is
// an event month. Every third year starting from year 2, the summer slot is
// overridden by a meteor shower.
func scheduledEvent(month int) EventKind {
	season := seasonOf(month)
	year := yearOf(month)

	if year >= 2 && (year-2)%3 == 0 && season == SeasonSummer {
		return EventMeteorShower
	}

	switch season {
	case SeasonSpring:
		return EventStorm
	case SeasonSummer:
		return EventThunderstorm
	case SeasonAutumn:
		return EventEarthquake
	case SeasonWinter:
		return EventBlizzard
	default:
		return EventNone
	}
}

// maybeEnterEvent starts the event for the new month if it is an event
// month. Called at the level-up boundary; the event's per-tick behavior only
// runs while the run is playing.
func (g *Game) maybeEnterEvent() {
	if !isEventMonth(g.month) {
		return
	}
	g.event.Current = scheduledEvent(g.month)
	if g.event.Current == EventStorm {
		if g.rng.Chance(0.5) {
			g.event.Wind = 1
		} else {
			g.event.Wind = -1
		}
	}
}

// clearEvent removes the active event and all event transients. Burning
// patches clear here too, matching lightning strikes.
func (g *Game) clearEvent() {
	g.event.Current = EventNone
	g.event.Incoming = EventNone
	g.event.Wind = 0
	g.event.Strikes = nil
	g.event.Patches = nil
	g.event.ShakeX, g.event.ShakeY = 0, 0
	g.flashTimer = 0
}

// updateEvents runs per-tick event behavior: hazard scheduling, screen
// shake, ambient particles, and the incoming-event warning.
func (g *Game) updateEvents(dt float64) {
	ev := g.cfg.Events

	// Second month of a block warns about the event in its last seconds
	if (g.month-1)%3 == 1 && g.timeInMonth >= g.cfg.Progression.MonthLength-g.cfg.Progression.WarningLead {
		g.event.Incoming = scheduledEvent(g.month + 1)
	}

	switch g.event.Current {
	case EventStorm:
		g.spawnStreaks(dt, g.event.Wind)

	case EventThunderstorm:
		// Strike rate scales with viewport width to keep per-pixel density
		rate := ev.LightningRate * g.worldW / g.cfg.Spawn.BaselineWidth
		if g.rng.Chance(rate * dt) {
			width := ev.LightningWidth
			g.event.Strikes = append(g.event.Strikes, LightningStrike{
				X:        g.rng.Range(0, math.Max(0, g.worldW-width)),
				Width:    width,
				WarnAt:   g.clock,
				StrikeAt: g.clock + ev.LightningWarning,
			})
		}
		if g.rng.Chance(ev.ThunderChance * dt) {
			g.cue(core.CueThunder)
		}

	case EventEarthquake:
		g.event.ShakeX = g.rng.Range(-ev.QuakeShake, ev.QuakeShake)
		g.event.ShakeY = g.rng.Range(-ev.QuakeShake, ev.QuakeShake)
		if g.rng.Chance(4 * dt) {
			g.spawnDust(g.rng.Range(0, g.worldW), g.worldH-g.cfg.Physics.GroundHeight)
		}

	case EventBlizzard:
		g.spawnDrift(dt)

	default:
		g.event.ShakeX, g.event.ShakeY = 0, 0
	}
}

// resolveLightning fires strikes whose time has come and discards strikes
// past their firing window. A strike whose x-span overlaps the player deals
// fixed damage through the usual cascade; a naked player dies outright.
func (g *Game) resolveLightning() {
	if len(g.event.Strikes) == 0 {
		return
	}
	ev := g.cfg.Events
	playerBox := g.player.hitbox(g.character, g.worldH)

	next := make([]LightningStrike, 0, len(g.event.Strikes))
	for _, s := range g.event.Strikes {
		if !s.Struck && g.clock >= s.StrikeAt && g.clock <= s.StrikeAt+ev.LightningWindow {
			s.Struck = true
			g.flashTimer = 0.15
			g.cue(core.CueLightning)

			strikeBox := core.NewRect(s.X, 0, s.Width, g.worldH)
			if strikeBox.OverlapsX(playerBox) {
				if g.player.Naked {
					g.gameOver()
					return
				}
				g.damagePlayer(ev.LightningDamage)
			}
		}

		if g.clock > s.StrikeAt+ev.LightningWindow {
			continue // Discard spent strikes
		}
		next = append(next, s)
	}
	g.event.Strikes = next
}

// addBurningPatch registers the ground hazard a meteor leaves behind.
func (g *Game) addBurningPatch(e Element) {
	pad := g.cfg.Events.BurnPad
	g.event.Patches = append(g.event.Patches, BurningPatch{
		X:         e.X - pad,
		Width:     e.Size + 2*pad,
		Remaining: g.cfg.Events.BurnLifespan,
	})
}

// resolveBurning ticks burning patches: continuous damage accumulates while
// the player stands in a patch and is flushed as whole points at a bounded
// rate to avoid indicator spam. Expired patches are dropped.
func (g *Game) resolveBurning(dt float64) {
	if len(g.event.Patches) == 0 {
		g.burnAccum = 0
		return
	}
	ev := g.cfg.Events
	playerBox := g.player.hitbox(g.character, g.worldH)
	grounded := g.player.grounded(g.cfg.Physics.GroundHeight)

	burning := false
	if grounded {
		for _, patch := range g.event.Patches {
			patchBox := core.NewRect(patch.X, 0, patch.Width, 1)
			if patchBox.OverlapsX(playerBox) {
				burning = true
				break
			}
		}
	}

	if burning {
		g.burnAccum += ev.BurnDPS * dt
		g.burnFlushTimer += dt
		if g.burnFlushTimer >= ev.BurnFlush && g.burnAccum >= 1 {
			damage := int(math.Round(g.burnAccum))
			g.burnAccum = math.Max(0, g.burnAccum-float64(damage))
			g.burnFlushTimer = 0
			if g.player.Naked {
				g.gameOver()
				return
			}
			g.damagePlayer(damage)
		}
	}

	next := make([]BurningPatch, 0, len(g.event.Patches))
	for _, patch := range g.event.Patches {
		patch.Remaining -= dt
		if patch.Remaining <= 0 {
			continue
		}
		next = append(next, patch)
	}
	g.event.Patches = next
}
