// Package config provides YAML-based game configuration loading for
// shellstorm. Every tuning constant of the simulation lives here so the
// core stays a pure function of config, seed, and input.
package config

// Config contains the full shellstorm simulation configuration.
type Config struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Heal        HealConfig        `yaml:"heal"`
	Events      EventsConfig      `yaml:"events"`
	Progression ProgressionConfig `yaml:"progression"`
	Skills      SkillsConfig      `yaml:"skills"`
	Particles   ParticlesConfig   `yaml:"particles"`
}

// PhysicsConfig defines player movement parameters.
// Units: logical pixels, seconds. IceFriction must stay well below
// GroundFriction so blizzard ground feels slick.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Downward accel, px/s^2
	JumpStrength   float64 `yaml:"jump_strength"`   // Instantaneous upward velocity, px/s
	Acceleration   float64 `yaml:"acceleration"`    // Horizontal accel, px/s^2
	MaxSpeed       float64 `yaml:"max_speed"`       // Horizontal speed cap, px/s
	GroundFriction float64 `yaml:"ground_friction"` // Decel toward zero while grounded, px/s^2
	IceFriction    float64 `yaml:"ice_friction"`    // Friction during blizzard
	WindForce      float64 `yaml:"wind_force"`      // Storm wind accel, px/s^2
	GroundHeight   float64 `yaml:"ground_height"`   // Floor height above the world bottom, px
	MaxDelta       float64 `yaml:"max_delta"`       // Per-tick dt clamp, seconds
}

// PlayerConfig defines baseline player stats before character overrides
// and skills.
type PlayerConfig struct {
	MaxHealth         int     `yaml:"max_health"`
	ExtraLives        int     `yaml:"extra_lives"`
	BlockChance       float64 `yaml:"block_chance"`
	BonusHeal         int     `yaml:"bonus_heal"`
	GoldenTouchChance float64 `yaml:"golden_touch_chance"`
	SlowFactor        float64 `yaml:"slow_factor"` // Accel/max-speed multiplier while slowed
}

// SpawnConfig defines falling-element generation parameters.
type SpawnConfig struct {
	HazardBaseInterval   float64 `yaml:"hazard_base_interval"`   // Seconds between rocks at month 1
	IntervalDecay        float64 `yaml:"interval_decay"`         // Per-month geometric decay (0.92)
	ResourceBaseInterval float64 `yaml:"resource_base_interval"` // Seconds between water drops
	MinSize              float64 `yaml:"min_size"`               // Element size range, px
	MaxSize              float64 `yaml:"max_size"`
	QuakeMaxSize         float64 `yaml:"quake_max_size"` // Narrower size cap during earthquake
	MinSpeed             float64 `yaml:"min_speed"`      // Element fall speed range, px/s
	MaxSpeed             float64 `yaml:"max_speed"`
	SpeedScale           float64 `yaml:"speed_scale"`    // sqrt(month-1) speed scaling factor
	BaselineWidth        float64 `yaml:"baseline_width"` // Viewport width intervals are calibrated for
}

// HealConfig defines water/snow pickup behavior and seasonal scaling.
type HealConfig struct {
	WaterHeal       int     `yaml:"water_heal"`        // Base heal per pickup
	SummerHealScale float64 `yaml:"summer_heal_scale"` // x0.5 in summer
	AutumnHealScale float64 `yaml:"autumn_heal_scale"` // x1.5 in autumn
	SummerSizeScale float64 `yaml:"summer_size_scale"` // Drop size x0.7 in summer
	AutumnSizeScale float64 `yaml:"autumn_size_scale"` // Drop size x1.3 in autumn
	SlowDuration    float64 `yaml:"slow_duration"`     // Seconds of slow after snow pickup
}

// EventsConfig defines special weather event parameters.
type EventsConfig struct {
	LightningRate    float64 `yaml:"lightning_rate"`    // Strikes/sec at baseline width
	LightningWarning float64 `yaml:"lightning_warning"` // Seconds between warning and strike
	LightningWindow  float64 `yaml:"lightning_window"`  // Firing window after strike time
	LightningDamage  int     `yaml:"lightning_damage"`
	LightningWidth   float64 `yaml:"lightning_width"` // Strike column width, px
	ThunderChance    float64 `yaml:"thunder_chance"`  // Ambient rumble probability per second

	BurnLifespan float64 `yaml:"burn_lifespan"` // Burning patch lifetime, seconds
	BurnDPS      float64 `yaml:"burn_dps"`      // Damage per second while standing in a patch
	BurnFlush    float64 `yaml:"burn_flush"`    // Min seconds between burn damage indicators
	BurnPad      float64 `yaml:"burn_pad"`      // Patch extends this far past the meteor on each side

	MeteorSpeedMult    float64 `yaml:"meteor_speed_mult"`    // x1.5 fall speed during meteor shower
	QuakeIntervalDiv   float64 `yaml:"quake_interval_div"`   // Hazard interval /1.5 during earthquake
	ThunderIntervalMul float64 `yaml:"thunder_interval_mul"` // Hazard interval x2 during thunderstorm
	MeteorIntervalMul  float64 `yaml:"meteor_interval_mul"`  // Hazard interval x1.25 during meteor shower
	ResourceThunderDiv float64 `yaml:"resource_thunder_div"` // Resource interval /3 during thunderstorm
	QuakeShake         float64 `yaml:"quake_shake"`          // Max screen shake offset, px
}

// ProgressionConfig defines the month timeline.
type ProgressionConfig struct {
	MonthLength    float64 `yaml:"month_length"`     // Seconds per month
	WarningLead    float64 `yaml:"warning_lead"`     // Incoming-event warning, last N seconds
	OfferCount     int     `yaml:"offer_count"`      // Skills offered per level-up
	ScorePerSecond float64 `yaml:"score_per_second"` // Survival score trickle
}

// SkillsConfig defines the numeric effect of each skill.
type SkillsConfig struct {
	ShellFortification int     `yaml:"shell_fortification"` // maxHealth += N
	IncreasedAgility   float64 `yaml:"increased_agility"`   // maxSpeed += N
	WaterAffinity      int     `yaml:"water_affinity"`      // bonusHeal += N
	SoothingRains      float64 `yaml:"soothing_rains"`      // waterInterval *= N
	BlockStep          float64 `yaml:"block_step"`          // blockChance += N
	BlockCap           float64 `yaml:"block_cap"`           // blockChance ceiling
	GoldenStep         float64 `yaml:"golden_step"`         // goldenTouchChance += N
}

// ParticlesConfig caps cosmetic state so it can never grow without bound.
type ParticlesConfig struct {
	Max int `yaml:"max"` // Total concurrent particles; oldest dropped on overflow
}
