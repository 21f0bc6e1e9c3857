package game

import "testing"

func TestApplySkillEffects(t *testing.T) {
	g := newTestGame(9)
	base := g.player

	g.applySkill(SkillShellFortification)
	if g.player.MaxHealth != base.MaxHealth+g.cfg.Skills.ShellFortification {
		t.Errorf("maxHealth = %d", g.player.MaxHealth)
	}

	g.applySkill(SkillIncreasedAgility)
	if g.player.MaxSpeed != base.MaxSpeed+g.cfg.Skills.IncreasedAgility {
		t.Errorf("maxSpeed = %.1f", g.player.MaxSpeed)
	}

	g.applySkill(SkillWaterAffinity)
	if g.player.BonusHeal != base.BonusHeal+g.cfg.Skills.WaterAffinity {
		t.Errorf("bonusHeal = %d", g.player.BonusHeal)
	}

	g.applySkill(SkillExtraLife)
	if g.player.ExtraLives != base.ExtraLives+1 {
		t.Errorf("extraLives = %d", g.player.ExtraLives)
	}

	g.applySkill(SkillPhotosynthesis)
	if g.player.PhotoLevel != 1 {
		t.Errorf("photoLevel = %d", g.player.PhotoLevel)
	}

	g.applySkill(SkillGoldenTouch)
	if !almostEqual(g.player.GoldenTouchChance, base.GoldenTouchChance+g.cfg.Skills.GoldenStep) {
		t.Errorf("goldenTouchChance = %.2f", g.player.GoldenTouchChance)
	}
}

func TestSkillsStack(t *testing.T) {
	g := newTestGame(9)
	base := g.player.MaxHealth

	g.applySkill(SkillShellFortification)
	g.applySkill(SkillShellFortification)
	g.applySkill(SkillShellFortification)
	if want := base + 3*g.cfg.Skills.ShellFortification; g.player.MaxHealth != want {
		t.Errorf("stacked maxHealth = %d, want %d", g.player.MaxHealth, want)
	}
}

func TestSoothingRainsCompounds(t *testing.T) {
	g := newTestGame(9)

	g.applySkill(SkillSoothingRains)
	g.applySkill(SkillSoothingRains)
	g.applySkill(SkillSoothingRains)

	m := g.cfg.Skills.SoothingRains
	if want := m * m * m; !almostEqual(g.waterScale, want) {
		t.Errorf("waterScale after 3 picks = %.4f, want %.4f", g.waterScale, want)
	}
}

func TestBlockChanceCaps(t *testing.T) {
	g := newTestGame(9)

	for i := 0; i < 20; i++ {
		g.applySkill(SkillBlockChance)
	}
	if g.player.BlockChance > g.cfg.Skills.BlockCap {
		t.Errorf("blockChance = %.2f exceeds cap %.2f", g.player.BlockChance, g.cfg.Skills.BlockCap)
	}
}

func TestPickOffersPoolByMonthType(t *testing.T) {
	inPool := func(pool []SkillID, id SkillID) bool {
		for _, p := range pool {
			if p == id {
				return true
			}
		}
		return false
	}

	tests := []struct {
		month int
		pool  []SkillID
	}{
		{2, permanentPool}, // Plain month
		{3, eventPool},     // Event month
		{12, yearlyPool},   // Year boundary
	}
	for _, tt := range tests {
		g := newTestGame(9)
		offers := g.pickOffers(tt.month)

		if len(offers) != g.cfg.Progression.OfferCount {
			t.Fatalf("month %d: %d offers, want %d", tt.month, len(offers), g.cfg.Progression.OfferCount)
		}
		seen := map[SkillID]bool{}
		for _, id := range offers {
			if !inPool(tt.pool, id) {
				t.Errorf("month %d: offer %s not in its pool", tt.month, id)
			}
			if seen[id] {
				t.Errorf("month %d: duplicate offer %s", tt.month, id)
			}
			seen[id] = true
		}
	}
}

func TestSkillTitlesAndDescriptions(t *testing.T) {
	all := []SkillID{
		SkillShellFortification, SkillIncreasedAgility, SkillWaterAffinity,
		SkillSoothingRains, SkillExtraLife, SkillBlockChance,
		SkillPhotosynthesis, SkillGoldenTouch,
	}
	for _, id := range all {
		if id.Title() == "" || id.Description() == "" {
			t.Errorf("skill %s missing title or description", id)
		}
	}
}
