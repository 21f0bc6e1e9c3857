package game

import "math"

// SkillID identifies a permanent upgrade. Skills are cumulative: picking the
// same id again stacks its effect.
type SkillID string

const (
	SkillShellFortification SkillID = "shellFortification"
	SkillIncreasedAgility   SkillID = "increasedAgility"
	SkillWaterAffinity      SkillID = "waterAffinity"
	SkillSoothingRains      SkillID = "soothingRains"
	SkillExtraLife          SkillID = "extraLife"
	SkillBlockChance        SkillID = "blockChance"
	SkillPhotosynthesis     SkillID = "photosynthesis"
	SkillGoldenTouch        SkillID = "goldenTouch"
)

// Title returns the display name for a skill.
func (id SkillID) Title() string {
	switch id {
	case SkillShellFortification:
		return "Shell Fortification"
	case SkillIncreasedAgility:
		return "Increased Agility"
	case SkillWaterAffinity:
		return "Water Affinity"
	case SkillSoothingRains:
		return "Soothing Rains"
	case SkillExtraLife:
		return "Extra Life"
	case SkillBlockChance:
		return "Hardened Shell"
	case SkillPhotosynthesis:
		return "Photosynthesis"
	case SkillGoldenTouch:
		return "Golden Touch"
	default:
		return string(id)
	}
}

// Description returns the short effect blurb shown in the level-up menu.
func (id SkillID) Description() string {
	switch id {
	case SkillShellFortification:
		return "+5 max health"
	case SkillIncreasedAgility:
		return "+40 max speed"
	case SkillWaterAffinity:
		return "+1 healing from every drop"
	case SkillSoothingRains:
		return "Water falls 10% more often"
	case SkillExtraLife:
		return "Bank a full resurrection"
	case SkillBlockChance:
		return "+10% chance to fully block damage"
	case SkillPhotosynthesis:
		return "Heal while standing still"
	case SkillGoldenTouch:
		return "+5% chance of a 10x golden hit"
	default:
		return ""
	}
}

// Skill pools by month type. Normal months offer flat stat boosts, event
// months offer defensive picks, yearly months offer the powerful passives.
var (
	permanentPool = []SkillID{
		SkillShellFortification,
		SkillIncreasedAgility,
		SkillWaterAffinity,
		SkillSoothingRains,
	}
	eventPool = []SkillID{
		SkillExtraLife,
		SkillBlockChance,
		SkillShellFortification,
		SkillIncreasedAgility,
	}
	yearlyPool = []SkillID{
		SkillPhotosynthesis,
		SkillGoldenTouch,
		SkillExtraLife,
	}
)

// pickOffers selects OfferCount skills without replacement from the pool for
// the given (already incremented) month.
func (g *Game) pickOffers(month int) []SkillID {
	var pool []SkillID
	switch {
	case isYearlyMonth(month):
		pool = yearlyPool
	case isEventMonth(month):
		pool = eventPool
	default:
		pool = permanentPool
	}

	// Fisher-Yates over a copy, then take the head
	shuffled := make([]SkillID, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	n := g.cfg.Progression.OfferCount
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// applySkill mutates run stats with the skill's effect.
func (g *Game) applySkill(id SkillID) {
	sk := g.cfg.Skills
	p := &g.player

	switch id {
	case SkillShellFortification:
		p.MaxHealth += sk.ShellFortification
	case SkillIncreasedAgility:
		p.MaxSpeed += sk.IncreasedAgility
	case SkillWaterAffinity:
		p.BonusHeal += sk.WaterAffinity
	case SkillSoothingRains:
		g.waterScale *= sk.SoothingRains
	case SkillExtraLife:
		p.ExtraLives++
	case SkillBlockChance:
		p.BlockChance = math.Min(p.BlockChance+sk.BlockStep, sk.BlockCap)
	case SkillPhotosynthesis:
		p.PhotoLevel++
	case SkillGoldenTouch:
		p.GoldenTouchChance += sk.GoldenStep
	}
}
