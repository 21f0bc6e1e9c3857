package game

import (
	"testing"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// playerElement returns an element sized and placed to intersect the player.
func playerElement(g *Game, kind ElementKind, size float64) Element {
	box := g.player.hitbox(g.character, g.worldH)
	return Element{
		ID:   999,
		Kind: kind,
		X:    box.X,
		Y:    box.Y,
		Size: size,
	}
}

func TestHazardHitScoresAndDamages(t *testing.T) {
	g := newTestGame(3)

	g.collideHazard(playerElement(g, ElementRock, 40))

	// Size 40 is worth 4 points and 4 damage with no block or golden roll
	if got := g.Score(); got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
	if g.rocksDestroyed != 1 {
		t.Errorf("rocksDestroyed = %d, want 1", g.rocksDestroyed)
	}
	want := g.player.MaxHealth - 4
	if g.player.Health != want {
		t.Errorf("health = %d, want %d", g.player.Health, want)
	}
}

func TestHazardRoundsHalfUp(t *testing.T) {
	g := newTestGame(3)
	g.collideHazard(playerElement(g, ElementRock, 15))

	// 15/10 rounds to 2
	if got := g.Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
}

func TestBlockNegatesDamageKeepsPoints(t *testing.T) {
	g := newTestGame(3)
	g.player.BlockChance = 1.0

	g.collideHazard(playerElement(g, ElementRock, 40))

	if g.player.Health != g.player.MaxHealth {
		t.Errorf("blocked hit should not damage, health = %d", g.player.Health)
	}
	if got := g.Score(); got != 4 {
		t.Errorf("blocked hit should still score, got %d", got)
	}
}

func TestGoldenTouchMultipliesPoints(t *testing.T) {
	g := newTestGame(3)
	g.player.GoldenTouchChance = 1.0
	g.player.BlockChance = 1.0

	g.collideHazard(playerElement(g, ElementRock, 40))
	if got := g.Score(); got != 40 {
		t.Errorf("golden hit score = %d, want 40", got)
	}
}

func TestOverkillBreaksShell(t *testing.T) {
	g := newTestGame(3)
	g.player.Health = 4

	g.damagePlayer(10)

	if g.player.Health != 0 {
		t.Errorf("health pins at zero, got %d", g.player.Health)
	}
	if !g.player.Naked {
		t.Error("lethal damage without lives should break the shell")
	}
	if len(g.shellPieces) != 2 {
		t.Errorf("shell break should spawn 2 fragments, got %d", len(g.shellPieces))
	}
	if g.status != core.StatusPlaying {
		t.Errorf("shell break is not game over, status = %s", g.status)
	}
}

func TestExtraLifeFullyRestores(t *testing.T) {
	g := newTestGame(3)
	g.player.ExtraLives = 1
	g.player.Health = 2

	g.damagePlayer(5)

	if g.player.ExtraLives != 0 {
		t.Errorf("extra life should be consumed, %d left", g.player.ExtraLives)
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("consumed life should fully restore, health = %d", g.player.Health)
	}
	if g.player.Naked {
		t.Error("consumed life should keep the shell intact")
	}
}

func TestNakedHazardHitIsLethal(t *testing.T) {
	g := newTestGame(3)
	g.player.Naked = true
	g.player.Health = 0

	g.collideHazard(playerElement(g, ElementRock, 15))
	if g.status != core.StatusGameOver {
		t.Errorf("naked hazard hit should end the run, status = %s", g.status)
	}
	if got := g.Score(); got != 0 {
		t.Errorf("lethal hit should not score, got %d", got)
	}
}

func TestWaterHealReformsShell(t *testing.T) {
	g := newTestGame(3)
	g.player.Naked = true
	g.player.Health = 0

	g.collideResource(playerElement(g, ElementWater, 20))

	if g.player.Health != g.cfg.Heal.WaterHeal {
		t.Errorf("health = %d, want %d", g.player.Health, g.cfg.Heal.WaterHeal)
	}
	if g.player.Naked {
		t.Error("healing above zero should reform the shell")
	}
	if g.reformTimer <= 0 {
		t.Error("reform animation should start")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	g := newTestGame(3)
	g.player.Health = g.player.MaxHealth - 1

	g.healPlayer(100)
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("heal should clamp to max, health = %d", g.player.Health)
	}
}

func TestSeasonalHealScaling(t *testing.T) {
	tests := []struct {
		month int
		want  int
	}{
		{1, 2},  // Spring: base heal
		{5, 1},  // Summer: x0.5
		{8, 3},  // Autumn: x1.5
		{11, 2}, // Winter: base (snow, but same amount)
	}
	for _, tt := range tests {
		g := newTestGame(3)
		g.month = tt.month
		g.player.Health = 5

		g.collideResource(playerElement(g, ElementWater, 20))
		if got := g.player.Health - 5; got != tt.want {
			t.Errorf("month %d heal = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestSnowAppliesSlow(t *testing.T) {
	g := newTestGame(3)
	g.player.Health = 5

	g.collideResource(playerElement(g, ElementSnow, 20))
	if g.slowTimer != g.cfg.Heal.SlowDuration {
		t.Errorf("slowTimer = %.1f, want %.1f", g.slowTimer, g.cfg.Heal.SlowDuration)
	}
}

func TestWaterAffinityAddsFlatHeal(t *testing.T) {
	g := newTestGame(3)
	g.player.BonusHeal = 2
	g.player.Health = 5

	g.collideResource(playerElement(g, ElementWater, 20))
	if got := g.player.Health - 5; got != 4 {
		t.Errorf("heal with affinity = %d, want 4", got)
	}
}

func TestFirstCollisionWins(t *testing.T) {
	g := newTestGame(3)
	g.player.BlockChance = 1.0 // Deterministic: no damage path

	e1 := playerElement(g, ElementRock, 20)
	e2 := playerElement(g, ElementRock, 20)
	e2.ID = 1000
	g.elements = []Element{e1, e2}

	g.resolveElements(0.001)

	if g.rocksDestroyed != 1 {
		t.Errorf("one collision per tick: rocksDestroyed = %d, want 1", g.rocksDestroyed)
	}
	if len(g.elements) != 1 {
		t.Errorf("the untouched element should survive the tick, %d remain", len(g.elements))
	}
}

func TestFatalHitStopsTickProcessing(t *testing.T) {
	g := newTestGame(3)
	g.player.Naked = true
	g.player.Health = 0

	rock := playerElement(g, ElementRock, 20)
	water := playerElement(g, ElementWater, 20)
	water.ID = 1000
	g.elements = []Element{rock, water}

	g.resolveElements(0.001)

	if g.status != core.StatusGameOver {
		t.Fatalf("status = %s, want gameover", g.status)
	}
	// The water drop after the fatal rock is kept, never resolved
	if len(g.elements) != 1 || g.elements[0].Kind != ElementWater {
		t.Errorf("remaining elements after fatal hit = %v", g.elements)
	}
	if g.player.Health != 0 {
		t.Errorf("no further resolution after death, health = %d", g.player.Health)
	}
}

func TestGroundContactRemovesElement(t *testing.T) {
	g := newTestGame(3)
	g.player.X = 0

	groundLine := g.worldH - g.cfg.Physics.GroundHeight
	g.elements = []Element{{
		ID: 1, Kind: ElementRock,
		X: g.worldW - 100, Y: groundLine - 5,
		Size: 20, Speed: 200,
	}}

	g.resolveElements(0.1) // Falls 20px, crossing the ground line
	if len(g.elements) != 0 {
		t.Errorf("grounded element should be removed, %d remain", len(g.elements))
	}
	if g.player.Health != g.player.MaxHealth {
		t.Error("ground contact far from the player should not damage")
	}
}

func TestMeteorGroundContactLeavesBurningPatch(t *testing.T) {
	g := newTestGame(3)
	g.player.X = 0

	groundLine := g.worldH - g.cfg.Physics.GroundHeight
	g.elements = []Element{{
		ID: 1, Kind: ElementMeteor,
		X: g.worldW - 100, Y: groundLine - 5,
		Size: 20, Speed: 200,
	}}

	g.resolveElements(0.1)
	if len(g.event.Patches) != 1 {
		t.Errorf("meteor impact should leave a burning patch, got %d", len(g.event.Patches))
	}
}
