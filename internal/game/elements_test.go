package game

import "testing"

func TestHazardIntervalShrinksWithMonths(t *testing.T) {
	g := newTestGame(5)

	prev := -1.0
	for month := 1; month <= 24; month++ {
		g.month = month
		interval := g.hazardInterval()
		if interval <= 0 {
			t.Fatalf("month %d: interval %.4f must stay positive", month, interval)
		}
		if prev > 0 && interval >= prev {
			t.Errorf("month %d: interval %.4f should shrink from %.4f", month, interval, prev)
		}
		prev = interval
	}
}

func TestHazardIntervalEventMultipliers(t *testing.T) {
	g := newTestGame(5)
	base := g.hazardInterval()

	g.event.Current = EventEarthquake
	if got := g.hazardInterval(); got >= base {
		t.Errorf("earthquake interval %.3f should be below base %.3f", got, base)
	}

	g.event.Current = EventThunderstorm
	if got := g.hazardInterval(); got <= base {
		t.Errorf("thunderstorm interval %.3f should be above base %.3f", got, base)
	}

	g.event.Current = EventMeteorShower
	if got := g.hazardInterval(); got <= base {
		t.Errorf("meteor shower interval %.3f should be above base %.3f", got, base)
	}
}

func TestResourceIntervalThunderstorm(t *testing.T) {
	g := newTestGame(5)
	base := g.resourceInterval()

	g.event.Current = EventThunderstorm
	if got := g.resourceInterval(); got >= base {
		t.Errorf("thunderstorm resource interval %.3f should be below base %.3f", got, base)
	}
}

func TestSoothingRainsShrinksResourceInterval(t *testing.T) {
	g := newTestGame(5)
	base := g.resourceInterval()

	g.waterScale = 0.9
	if got := g.resourceInterval(); got >= base {
		t.Errorf("soothed interval %.3f should be below base %.3f", got, base)
	}
}

func TestMakeHazardSizeBounds(t *testing.T) {
	g := newTestGame(5)
	cfg := g.cfg.Spawn

	for i := 0; i < 200; i++ {
		e := g.makeHazard()
		if e.Kind != ElementRock {
			t.Fatalf("plain month hazard kind = %s, want rock", e.Kind)
		}
		if e.Size < cfg.MinSize || e.Size > cfg.MaxSize {
			t.Fatalf("size %.1f outside [%.1f, %.1f]", e.Size, cfg.MinSize, cfg.MaxSize)
		}
		if e.Y != -e.Size {
			t.Fatalf("new element should start just above the viewport, Y = %.1f", e.Y)
		}
		if e.X < 0 || e.X+e.Size > g.worldW {
			t.Fatalf("element spans outside the world: X=%.1f size=%.1f", e.X, e.Size)
		}
	}
}

func TestEarthquakeNarrowsHazardSize(t *testing.T) {
	g := newTestGame(5)
	g.event.Current = EventEarthquake

	for i := 0; i < 200; i++ {
		e := g.makeHazard()
		if e.Size > g.cfg.Spawn.QuakeMaxSize {
			t.Fatalf("earthquake hazard size %.1f exceeds cap %.1f", e.Size, g.cfg.Spawn.QuakeMaxSize)
		}
	}
}

func TestMeteorShowerSpawnsMeteors(t *testing.T) {
	g := newTestGame(5)
	g.event.Current = EventMeteorShower

	e := g.makeHazard()
	if e.Kind != ElementMeteor {
		t.Errorf("meteor shower hazard kind = %s, want meteor", e.Kind)
	}

	// Same RNG sequence without the shower: the speed ratio is exactly the
	// meteor multiplier
	plain := newTestGame(5)
	rock := plain.makeHazard()
	want := rock.Speed * g.cfg.Events.MeteorSpeedMult
	if !almostEqual(e.Speed, want) {
		t.Errorf("meteor speed = %.2f, want %.2f", e.Speed, want)
	}
}

func TestHazardSpeedScalesWithMonth(t *testing.T) {
	g := newTestGame(5)

	// Late-month hazards must all clear the month-1 speed ceiling
	g.month = 25
	for i := 0; i < 100; i++ {
		e := g.makeHazard()
		if e.Speed <= g.cfg.Spawn.MinSpeed {
			t.Fatalf("month 25 hazard speed %.1f should exceed the base minimum", e.Speed)
		}
	}
}

func TestWinterResourcesAreSnow(t *testing.T) {
	g := newTestGame(5)

	g.month = 11 // Winter
	if e := g.makeResource(); e.Kind != ElementSnow {
		t.Errorf("winter resource kind = %s, want snow", e.Kind)
	}
	g.month = 2 // Spring
	if e := g.makeResource(); e.Kind != ElementWater {
		t.Errorf("spring resource kind = %s, want water", e.Kind)
	}
}

func TestSeasonScalesResourceSize(t *testing.T) {
	g1 := newTestGame(5)
	g1.month = 5 // Summer
	summer := g1.makeResource()

	g2 := newTestGame(5)
	g2.month = 8 // Autumn
	autumn := g2.makeResource()

	// Same RNG sequence, so the size difference is purely the season scale
	if summer.Size >= autumn.Size {
		t.Errorf("summer drop %.1f should be smaller than autumn drop %.1f", summer.Size, autumn.Size)
	}
}

func TestSpawnElementsRespectsIntervals(t *testing.T) {
	g := newTestGame(5)

	// Immediately after reset nothing has elapsed, so nothing spawns
	g.spawnElements()
	if len(g.elements) != 0 {
		t.Fatalf("no spawn before the first interval, got %d elements", len(g.elements))
	}

	g.clock = g.hazardInterval() + 0.01
	g.spawnElements()
	if len(g.elements) != 1 {
		t.Fatalf("hazard should spawn once its interval elapses, got %d", len(g.elements))
	}

	// Spawn clock reset: the next call spawns nothing
	g.spawnElements()
	if len(g.elements) != 1 {
		t.Errorf("no double spawn within one interval, got %d", len(g.elements))
	}
}
