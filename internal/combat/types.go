package combat

import "math"

// TickMillis is the length of one simulation tick. All timestamps are milliseconds.
const TickMillis = 1000.0 / 60

// TicksFor converts a duration in milliseconds to a whole number of ticks.
func TicksFor(ms float64) int {
	if ms <= 0 {
		return 0
	}
	return int(math.Ceil(ms / TickMillis))
}

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Mood string

const (
	MoodNeutral  Mood = "neutral"
	MoodCalm     Mood = "calm"
	MoodAgitated Mood = "agitated"
	MoodPlayful  Mood = "playful"
)

type BuffKind string

const (
	BuffLowHPBerserk BuffKind = "LOW_HP_BERSERK"
	BuffLowHPCharge  BuffKind = "LOW_HP_CHARGE"
	DebuffCrash      BuffKind = "SYSTEM_CRASH"
)

// Buff is a time-boxed modifier. Expired entries stay in the slice until the
// next PruneBuffs; readers go through the now-aware accessors.
type Buff struct {
	Kind       BuffKind
	Multiplier float64
	EndTime    float64
}

func (b Buff) Live(now float64) bool { return now < b.EndTime }

// Strand is a combatant in the arena.
type Strand struct {
	ID   string
	Name Name

	Pos               Vec2
	Vel               Vec2
	Speed             float64
	TempSpeedModifier float64

	Radius    float64
	Color     string
	GlowColor string

	Health    float64
	MaxHealth float64
	Defeated  bool
	LowHP     bool
	Invisible bool

	UltimateCharge    float64
	MaxUltimateCharge float64
	UltimateCooldown  float64 // ultimate is locked until this timestamp

	Mood        Mood
	MoodEndTime float64

	TempBuffs []Buff
	Debuffs   []Buff
}

func NewStrand(id string, name Name, maxHealth float64) *Strand {
	return &Strand{
		ID: id, Name: name,
		Health: maxHealth, MaxHealth: maxHealth,
		Speed: 1.0, TempSpeedModifier: 1.0,
		Radius:            12,
		MaxUltimateCharge: 100,
		Mood:              MoodNeutral,
	}
}

// Active means the strand can be seen and targeted.
func (s *Strand) Active() bool { return s != nil && !s.Defeated && !s.Invisible }

func (s *Strand) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / s.MaxHealth
}

func (s *Strand) ChargeRatio() float64 {
	if s.MaxUltimateCharge <= 0 {
		return 0
	}
	return s.UltimateCharge / s.MaxUltimateCharge
}

// UltimateReady reports a fully charged ultimate that is off cooldown.
func (s *Strand) UltimateReady(now float64) bool {
	return s.MaxUltimateCharge > 0 && s.UltimateCharge >= s.MaxUltimateCharge && now >= s.UltimateCooldown
}

func (s *Strand) Heal(amount float64) {
	if s.Defeated || amount <= 0 {
		return
	}
	s.Health = math.Min(s.MaxHealth, s.Health+amount)
}

// Damage lowers health and flags defeat. It reports whether this hit defeated the strand.
func (s *Strand) Damage(amount float64) bool {
	if s.Defeated || amount <= 0 {
		return false
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = 0
		s.Defeated = true
		return true
	}
	return false
}

// PruneBuffs drops expired buffs and debuffs.
func (s *Strand) PruneBuffs(now float64) {
	s.TempBuffs = pruneBuffs(s.TempBuffs, now)
	s.Debuffs = pruneBuffs(s.Debuffs, now)
}

func pruneBuffs(in []Buff, now float64) []Buff {
	out := in[:0]
	for _, b := range in {
		if b.Live(now) {
			out = append(out, b)
		}
	}
	return out
}

// HasBuff checks the live temp buffs and debuffs for kind.
func (s *Strand) HasBuff(kind BuffKind, now float64) bool {
	_, ok := s.buff(kind, now)
	return ok
}

// BuffMultiplier is the multiplier of a live buff of kind, or 1.
func (s *Strand) BuffMultiplier(kind BuffKind, now float64) float64 {
	if b, ok := s.buff(kind, now); ok {
		return b.Multiplier
	}
	return 1.0
}

func (s *Strand) buff(kind BuffKind, now float64) (Buff, bool) {
	for _, list := range [][]Buff{s.TempBuffs, s.Debuffs} {
		for _, b := range list {
			if b.Kind == kind && b.Live(now) {
				return b, true
			}
		}
	}
	return Buff{}, false
}

// AddDebuff applies a debuff unless a live one of the same kind exists.
func (s *Strand) AddDebuff(kind BuffKind, mult, duration, now float64) bool {
	s.Debuffs = pruneBuffs(s.Debuffs, now)
	for _, b := range s.Debuffs {
		if b.Kind == kind {
			return false
		}
	}
	s.Debuffs = append(s.Debuffs, Buff{Kind: kind, Multiplier: mult, EndTime: now + duration})
	return true
}
