package config

import (
	_ "embed"
)

//go:embed defaults/shellstorm.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. Used as the last
// fallback when the embedded YAML cannot be parsed, and by tests that need
// a known-good baseline.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:        2000.0,
			JumpStrength:   700.0,
			Acceleration:   1200.0,
			MaxSpeed:       360.0,
			GroundFriction: 900.0,
			IceFriction:    120.0,
			WindForce:      250.0,
			GroundHeight:   60.0,
			MaxDelta:       0.1,
		},
		Player: PlayerConfig{
			MaxHealth:         20,
			ExtraLives:        0,
			BlockChance:       0.0,
			BonusHeal:         0,
			GoldenTouchChance: 0.0,
			SlowFactor:        0.5,
		},
		Spawn: SpawnConfig{
			HazardBaseInterval:   1.1,
			IntervalDecay:        0.92,
			ResourceBaseInterval: 4.0,
			MinSize:              15.0,
			MaxSize:              55.0,
			QuakeMaxSize:         25.0,
			MinSpeed:             150.0,
			MaxSpeed:             300.0,
			SpeedScale:           0.15,
			BaselineWidth:        800.0,
		},
		Heal: HealConfig{
			WaterHeal:       2,
			SummerHealScale: 0.5,
			AutumnHealScale: 1.5,
			SummerSizeScale: 0.7,
			AutumnSizeScale: 1.3,
			SlowDuration:    2.0,
		},
		Events: EventsConfig{
			LightningRate:      1.5,
			LightningWarning:   1.2,
			LightningWindow:    0.1,
			LightningDamage:    10,
			LightningWidth:     60.0,
			ThunderChance:      0.3,
			BurnLifespan:       3.0,
			BurnDPS:            5.0,
			BurnFlush:          0.4,
			BurnPad:            10.0,
			MeteorSpeedMult:    1.5,
			QuakeIntervalDiv:   1.5,
			ThunderIntervalMul: 2.0,
			MeteorIntervalMul:  1.25,
			ResourceThunderDiv: 3.0,
			QuakeShake:         6.0,
		},
		Progression: ProgressionConfig{
			MonthLength:    30.0,
			WarningLead:    6.0,
			OfferCount:     3,
			ScorePerSecond: 10.0,
		},
		Skills: SkillsConfig{
			ShellFortification: 5,
			IncreasedAgility:   40.0,
			WaterAffinity:      1,
			SoothingRains:      0.9,
			BlockStep:          0.1,
			BlockCap:           0.9,
			GoldenStep:         0.05,
		},
		Particles: ParticlesConfig{
			Max: 300,
		},
	}
}
