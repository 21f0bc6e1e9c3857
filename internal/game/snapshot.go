package game

import (
	"hash/fnv"
	"math"
)

// Snapshot is the complete serializable simulation state: everything needed
// to resume the run or verify two runs diverged. Cosmetic state (particles,
// floating texts, shell fragments) is deliberately excluded; it never feeds
// back into gameplay.
type Snapshot struct {
	Status string `json:"status"`
	Paused bool   `json:"paused"`

	RNGState uint64 `json:"rngState"`

	CharacterID string  `json:"character"`
	PlayerX     float64 `json:"playerX"`
	PlayerY     float64 `json:"playerY"`
	PlayerVX    float64 `json:"playerVX"`
	PlayerVY    float64 `json:"playerVY"`
	Health      int     `json:"health"`
	Naked       bool    `json:"naked"`

	MaxHealth         int     `json:"maxHealth"`
	MaxSpeed          float64 `json:"maxSpeed"`
	ExtraLives        int     `json:"extraLives"`
	BlockChance       float64 `json:"blockChance"`
	BonusHeal         int     `json:"bonusHeal"`
	GoldenTouchChance float64 `json:"goldenTouchChance"`
	PhotoLevel        int     `json:"photoLevel"`

	Elements      []Element `json:"elements"`
	NextElementID int       `json:"nextElementID"`

	Clock             float64 `json:"clock"`
	LastHazardSpawn   float64 `json:"lastHazardSpawn"`
	LastResourceSpawn float64 `json:"lastResourceSpawn"`
	Month             int     `json:"month"`
	TimeInMonth       float64 `json:"timeInMonth"`

	Event          EventKind         `json:"event"`
	Incoming       EventKind         `json:"incoming"`
	Wind           int               `json:"wind"`
	Strikes        []LightningStrike `json:"strikes,omitempty"`
	Patches        []BurningPatch    `json:"patches,omitempty"`
	WaterScale     float64           `json:"waterScale"`
	SlowTimer      float64           `json:"slowTimer"`
	PhotoTimer     float64           `json:"photoTimer"`
	BurnAccum      float64           `json:"burnAccum"`
	BurnFlushTimer float64           `json:"burnFlushTimer"`

	Score          float64   `json:"score"`
	RocksDestroyed int       `json:"rocksDestroyed"`
	Offers         []SkillID `json:"offers,omitempty"`
	Acquired       []SkillID `json:"acquired,omitempty"`
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	s := Snapshot{
		Status: g.status,
		Paused: g.paused,

		RNGState: g.rng.state,

		CharacterID: g.character.ID,
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerVX:    p.VX,
		PlayerVY:    p.VY,
		Health:      p.Health,
		Naked:       p.Naked,

		MaxHealth:         p.MaxHealth,
		MaxSpeed:          p.MaxSpeed,
		ExtraLives:        p.ExtraLives,
		BlockChance:       p.BlockChance,
		BonusHeal:         p.BonusHeal,
		GoldenTouchChance: p.GoldenTouchChance,
		PhotoLevel:        p.PhotoLevel,

		Elements:      append([]Element(nil), g.elements...),
		NextElementID: g.nextElementID,

		Clock:             g.clock,
		LastHazardSpawn:   g.lastHazardSpawn,
		LastResourceSpawn: g.lastResourceSpawn,
		Month:             g.month,
		TimeInMonth:       g.timeInMonth,

		Event:          g.event.Current,
		Incoming:       g.event.Incoming,
		Wind:           g.event.Wind,
		Strikes:        append([]LightningStrike(nil), g.event.Strikes...),
		Patches:        append([]BurningPatch(nil), g.event.Patches...),
		WaterScale:     g.waterScale,
		SlowTimer:      g.slowTimer,
		PhotoTimer:     g.photoTimer,
		BurnAccum:      g.burnAccum,
		BurnFlushTimer: g.burnFlushTimer,

		Score:          g.scoreF,
		RocksDestroyed: g.rocksDestroyed,
		Offers:         append([]SkillID(nil), g.offers...),
		Acquired:       append([]SkillID(nil), g.acquired...),
	}
	return s
}

// ApplySnapshot restores the simulation from a snapshot. Cosmetic state is
// dropped; the next ticks regenerate it.
func (g *Game) ApplySnapshot(s Snapshot) error {
	ch, err := CharacterByID(s.CharacterID)
	if err != nil {
		return err
	}

	g.status = s.Status
	g.paused = s.Paused
	g.rng = &RNG{state: s.RNGState}
	g.character = ch

	g.player = Player{
		X: s.PlayerX, Y: s.PlayerY,
		VX: s.PlayerVX, VY: s.PlayerVY,
		Health:            s.Health,
		Naked:             s.Naked,
		CharacterID:       s.CharacterID,
		MaxHealth:         s.MaxHealth,
		MaxSpeed:          s.MaxSpeed,
		ExtraLives:        s.ExtraLives,
		BlockChance:       s.BlockChance,
		BonusHeal:         s.BonusHeal,
		GoldenTouchChance: s.GoldenTouchChance,
		PhotoLevel:        s.PhotoLevel,
	}

	g.elements = append([]Element(nil), s.Elements...)
	g.nextElementID = s.NextElementID

	g.clock = s.Clock
	g.lastHazardSpawn = s.LastHazardSpawn
	g.lastResourceSpawn = s.LastResourceSpawn
	g.month = s.Month
	g.timeInMonth = s.TimeInMonth

	g.event = eventState{
		Current:  s.Event,
		Incoming: s.Incoming,
		Wind:     s.Wind,
		Strikes:  append([]LightningStrike(nil), s.Strikes...),
		Patches:  append([]BurningPatch(nil), s.Patches...),
	}
	g.waterScale = s.WaterScale
	g.slowTimer = s.SlowTimer
	g.photoTimer = s.PhotoTimer
	g.burnAccum = s.BurnAccum
	g.burnFlushTimer = s.BurnFlushTimer

	g.scoreF = s.Score
	g.rocksDestroyed = s.RocksDestroyed
	g.offers = append([]SkillID(nil), s.Offers...)
	g.acquired = append([]SkillID(nil), s.Acquired...)

	g.particles = nil
	g.floats = nil
	g.shellPieces = nil
	g.reformTimer = 0
	g.flashTimer = 0
	return nil
}

// Hash returns a stable 64-bit digest of the snapshot, used by divergence
// checks in tests and by the spectator feed to skip unchanged frames.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	writeStr := func(v string) {
		_, _ = h.Write([]byte(v))
		_, _ = h.Write([]byte{0})
	}
	writeU64 := func(v uint64) {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	writeF := func(v float64) { writeU64(math.Float64bits(v)) }
	writeI := func(v int) { writeU64(uint64(int64(v))) } //#nosec G115 -- hashing, not range-sensitive
	writeB := func(v bool) {
		if v {
			writeU64(1)
		} else {
			writeU64(0)
		}
	}

	writeStr(s.Status)
	writeB(s.Paused)
	writeU64(s.RNGState)
	writeStr(s.CharacterID)
	writeF(s.PlayerX)
	writeF(s.PlayerY)
	writeF(s.PlayerVX)
	writeF(s.PlayerVY)
	writeI(s.Health)
	writeB(s.Naked)
	writeI(s.MaxHealth)
	writeF(s.MaxSpeed)
	writeI(s.ExtraLives)
	writeF(s.BlockChance)
	writeI(s.BonusHeal)
	writeF(s.GoldenTouchChance)
	writeI(s.PhotoLevel)

	writeI(len(s.Elements))
	for _, e := range s.Elements {
		writeI(e.ID)
		writeI(int(e.Kind))
		writeF(e.X)
		writeF(e.Y)
		writeF(e.Size)
		writeF(e.Speed)
	}
	writeI(s.NextElementID)

	writeF(s.Clock)
	writeF(s.LastHazardSpawn)
	writeF(s.LastResourceSpawn)
	writeI(s.Month)
	writeF(s.TimeInMonth)

	writeI(int(s.Event))
	writeI(int(s.Incoming))
	writeI(s.Wind)
	writeI(len(s.Strikes))
	for _, st := range s.Strikes {
		writeF(st.X)
		writeF(st.Width)
		writeF(st.WarnAt)
		writeF(st.StrikeAt)
		writeB(st.Struck)
	}
	writeI(len(s.Patches))
	for _, p := range s.Patches {
		writeF(p.X)
		writeF(p.Width)
		writeF(p.Remaining)
	}
	writeF(s.WaterScale)
	writeF(s.SlowTimer)
	writeF(s.PhotoTimer)
	writeF(s.BurnAccum)
	writeF(s.BurnFlushTimer)

	writeF(s.Score)
	writeI(s.RocksDestroyed)
	for _, id := range s.Offers {
		writeStr(string(id))
	}
	for _, id := range s.Acquired {
		writeStr(string(id))
	}

	return h.Sum64()
}
