package combat

import "strings"

type EffectKind uint8

const (
	EffectRipple EffectKind = iota + 1
	EffectGroundingAura
	EffectEnergyTrail
	EffectGlitchRect
	EffectDistortionRing
	EffectFoundationAura
	EffectLightPulse
	EffectMote
	EffectStudyGlyph
	EffectJudgmentLink
	EffectScanTell
	EffectChallengeMark
	EffectDarkPulse
	EffectEmpathLink
	EffectTether
)

var effectNames = map[EffectKind]string{
	EffectRipple:         "RIPPLE",
	EffectGroundingAura:  "GROUNDING_AURA",
	EffectEnergyTrail:    "ENERGY_TRAIL",
	EffectGlitchRect:     "GLITCH_RECT",
	EffectDistortionRing: "DISTORTION_RING",
	EffectFoundationAura: "FOUNDATION_AURA",
	EffectLightPulse:     "LIGHT_PULSE",
	EffectMote:           "MOTE",
	EffectStudyGlyph:     "STUDY_GLYPH",
	EffectJudgmentLink:   "JUDGMENT_LINK",
	EffectScanTell:       "SCAN_TELL",
	EffectChallengeMark:  "CHALLENGE_MARK",
	EffectDarkPulse:      "DARK_PULSE",
	EffectEmpathLink:     "EMPATH_LINK",
	EffectTether:         "TETHER",
}

func (k EffectKind) String() string {
	if n, ok := effectNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

func (k EffectKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Effect is a short-lived job effect. Life and MaxLife count ticks and are
// aged by the host; To is the far end of link effects, Size the extent of
// rectangular ones.
type Effect struct {
	Kind     EffectKind `json:"kind"`
	Pos      Vec2       `json:"pos"`
	To       Vec2       `json:"to,omitempty"`
	Size     Vec2       `json:"size,omitempty"`
	SourceID string     `json:"source,omitempty"`
	TargetID string     `json:"target,omitempty"`
	Life     int        `json:"life"`
	MaxLife  int        `json:"maxLife"`
	Radius   float64    `json:"radius,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// NewEffect creates an effect that lives for ms milliseconds.
func NewEffect(kind EffectKind, pos Vec2, ms float64) Effect {
	life := TicksFor(ms)
	return Effect{Kind: kind, Pos: pos, Life: life, MaxLife: life}
}

type UltimateKind uint8

const (
	UltSanctuary UltimateKind = iota + 1
	UltVerdantBloom
	UltFissure
	UltEntropyWave
	UltSystemCrash
	UltRadiantSurge
	UltHeartline
	UltChallenge
)

var ultimateNames = map[UltimateKind]string{
	UltSanctuary:    "SANCTUARY",
	UltVerdantBloom: "VERDANT_BLOOM",
	UltFissure:      "FISSURE",
	UltEntropyWave:  "ENTROPY_WAVE",
	UltSystemCrash:  "SYSTEM_CRASH",
	UltRadiantSurge: "RADIANT_SURGE",
	UltHeartline:    "HEARTLINE",
	UltChallenge:    "CHALLENGE",
}

func (k UltimateKind) String() string {
	if n, ok := ultimateNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

func (k UltimateKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ActiveUltimate is a running ultimate owned by the host.
type ActiveUltimate struct {
	Kind     UltimateKind `json:"kind"`
	CasterID string       `json:"caster"`
	TargetID string       `json:"target,omitempty"`
	Pos      Vec2         `json:"pos"`
	Radius   float64      `json:"radius"`
	Life     int          `json:"life"`
	MaxLife  int          `json:"maxLife"`
}

type GlobalKind uint8

const (
	GlobalSystemCrash GlobalKind = iota + 1
)

func (k GlobalKind) String() string {
	if k == GlobalSystemCrash {
		return "SYSTEM_CRASH"
	}
	return "UNKNOWN"
}

func (k GlobalKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// GlobalEffect is an arena-wide effect, ignoring position.
type GlobalEffect struct {
	Kind       GlobalKind `json:"kind"`
	CasterID   string     `json:"caster"`
	CasterName Name       `json:"casterName"`
	Life       int        `json:"life"`
	MaxLife    int        `json:"maxLife"`
}

// Aggression scales every ultimate gate. Aggressive is the most permissive.
type Aggression uint8

const (
	Passive Aggression = iota
	Normal
	Aggressive
)

func (a Aggression) String() string {
	switch a {
	case Passive:
		return "passive"
	case Aggressive:
		return "aggressive"
	default:
		return "normal"
	}
}

func ParseAggression(s string) (Aggression, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passive":
		return Passive, true
	case "normal", "":
		return Normal, true
	case "aggressive":
		return Aggressive, true
	}
	return Normal, false
}
