// Package ability decides when a strand's ultimate should fire. Every gate
// is a pure predicate over a read-only View; activation itself belongs to
// the host.
package ability

import "strandsim/internal/combat"

// View is the world state a gate may read.
type View struct {
	Strands    []*combat.Strand
	Relations  *combat.Relationships
	Ultimates  []combat.ActiveUltimate
	Globals    []combat.GlobalEffect
	Aggression combat.Aggression
}

type Gate func(caster *combat.Strand, v View) bool

// Spec holds the fixed tuning of one ultimate.
type Spec struct {
	Kind     combat.UltimateKind
	Radius   float64 // 0 for arena-wide ultimates
	Duration float64 // ms
	Cooldown float64 // ms
	Power    float64
}

var specs = map[combat.UltimateKind]Spec{
	combat.UltSanctuary:    {Kind: combat.UltSanctuary, Radius: 160, Duration: 3000, Cooldown: 20000, Power: 25},
	combat.UltVerdantBloom: {Kind: combat.UltVerdantBloom, Radius: 180, Duration: 2500, Cooldown: 22000, Power: 30},
	combat.UltFissure:      {Kind: combat.UltFissure, Radius: 140, Duration: 1500, Cooldown: 24000, Power: 30},
	combat.UltEntropyWave:  {Kind: combat.UltEntropyWave, Radius: 120, Duration: 1800, Cooldown: 20000, Power: 20},
	combat.UltSystemCrash:  {Kind: combat.UltSystemCrash, Duration: 6000, Cooldown: 30000, Power: 0.5},
	combat.UltRadiantSurge: {Kind: combat.UltRadiantSurge, Radius: 200, Duration: 2000, Cooldown: 25000, Power: 0.4},
	combat.UltHeartline:    {Kind: combat.UltHeartline, Radius: 220, Duration: 2500, Cooldown: 28000, Power: 20},
	combat.UltChallenge:    {Kind: combat.UltChallenge, Radius: 150, Duration: 5000, Cooldown: 22000, Power: 25},
}

func SpecOf(kind combat.UltimateKind) (Spec, bool) {
	s, ok := specs[kind]
	return s, ok
}

// tiers holds one threshold per aggression level, indexed Passive, Normal, Aggressive.
type tiers[T any] [3]T

func (t tiers[T]) at(a combat.Aggression) T {
	if int(a) >= len(t) {
		return t[combat.Normal]
	}
	return t[a]
}

func (v View) ultimateActive(kind combat.UltimateKind) bool {
	for _, u := range v.Ultimates {
		if u.Kind == kind && u.Life > 0 {
			return true
		}
	}
	return false
}

func (v View) globalActive(kind combat.GlobalKind) bool {
	for _, g := range v.Globals {
		if g.Kind == kind && g.Life > 0 {
			return true
		}
	}
	return false
}

func (v View) partition(c *combat.Strand) (allies, enemies []*combat.Strand) {
	return combat.Partition(c, v.Strands, v.Relations)
}
