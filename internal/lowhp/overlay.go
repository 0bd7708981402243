// Package lowhp steers strands that have dropped below the low-health
// threshold. The host decides when a strand qualifies; this package only
// shapes what it does about it.
package lowhp

import (
	"math"

	"strandsim/internal/combat"
	"strandsim/internal/util"
)

type Archetype uint8

const (
	Default Archetype = iota
	Flee
	Berserk
	SeekAlly
	Huddle
	DesperateCharge
	Erratic
)

func (a Archetype) String() string {
	switch a {
	case Flee:
		return "flee"
	case Berserk:
		return "berserk"
	case SeekAlly:
		return "seek-ally"
	case Huddle:
		return "huddle"
	case DesperateCharge:
		return "desperate-charge"
	case Erratic:
		return "erratic"
	}
	return "default"
}

var archetypes = map[combat.Name]Archetype{
	combat.Solace:  SeekAlly,
	combat.Elowen:  SeekAlly,
	combat.Mira:    SeekAlly,
	combat.Kestrel: Erratic,
	combat.Vex:     Erratic,
	combat.Reverie: Flee,
	combat.Sage:    Flee,
	combat.Bastion: Huddle,
	combat.Ariadne: Huddle,
	combat.Lumen:   DesperateCharge,
	combat.Omen:    DesperateCharge,
	combat.Riposte: Berserk,
	combat.Nyx:     Berserk,
	combat.Arbiter: Default,
}

// Of returns the archetype a character falls back on when hurt.
func Of(name combat.Name) Archetype { return archetypes[name] }

const (
	fleeForce    = 0.3
	berserkForce = 0.4
	seekForce    = 0.3
	weakFlee     = 0.2
	huddleForce  = 0.25
	erraticForce = 0.5

	fleeSpeed    = 1.5
	berserkSpeed = 1.2
	seekSpeed    = 1.2
	huddleSpeed  = 1.1
	erraticSpeed = 1.8

	buffDuration   = 1000.0
	berserkMult    = 1.3
	chargeRateMult = 3.0
)

// Below reports whether s sits under the low-health threshold (a ratio of max health).
func Below(s *combat.Strand, threshold float64) bool {
	return s.Active() && s.HealthRatio() < threshold
}

// Apply runs the strand's archetype for one tick and returns the steering
// force to add to its velocity. Speed modifiers and buffs are written to s.
func Apply(s *combat.Strand, enemies, allies []*combat.Strand, now float64, rng util.Roller) combat.Vec2 {
	enemy, _ := combat.Nearest(s.Pos, enemies)
	ally, _ := combat.Nearest(s.Pos, allies)

	switch Of(s.Name) {
	case Flee:
		s.TempSpeedModifier *= fleeSpeed
		return away(s, enemy, fleeForce)
	case Berserk:
		s.TempSpeedModifier *= berserkSpeed
		addBuff(s, combat.BuffLowHPBerserk, berserkMult, now)
		if enemy == nil {
			return combat.Vec2{}
		}
		return combat.Toward(s.Pos, enemy.Pos).Scale(berserkForce)
	case SeekAlly:
		s.TempSpeedModifier *= seekSpeed
		if ally != nil {
			return combat.Toward(s.Pos, ally.Pos).Scale(seekForce)
		}
		return away(s, enemy, weakFlee)
	case Huddle:
		s.TempSpeedModifier *= huddleSpeed
		if len(allies) == 0 {
			return combat.Vec2{}
		}
		return combat.Toward(s.Pos, centroid(allies)).Scale(huddleForce)
	case DesperateCharge:
		addBuff(s, combat.BuffLowHPCharge, chargeRateMult, now)
		return combat.Vec2{}
	case Erratic:
		s.TempSpeedModifier *= erraticSpeed
		return combat.Heading(rng.Float64() * 2 * math.Pi).Scale(erraticForce)
	}
	return away(s, enemy, weakFlee)
}

func away(s, enemy *combat.Strand, mag float64) combat.Vec2 {
	if enemy == nil {
		return combat.Vec2{}
	}
	return combat.Toward(enemy.Pos, s.Pos).Scale(mag)
}

func centroid(ss []*combat.Strand) combat.Vec2 {
	var sum combat.Vec2
	for _, s := range ss {
		sum = sum.Add(s.Pos)
	}
	return sum.Scale(1 / float64(len(ss)))
}

// addBuff never stacks or refreshes: a live buff of the same kind is left as is.
func addBuff(s *combat.Strand, kind combat.BuffKind, mult, now float64) {
	s.PruneBuffs(now)
	if s.HasBuff(kind, now) {
		return
	}
	s.TempBuffs = append(s.TempBuffs, combat.Buff{Kind: kind, Multiplier: mult, EndTime: now + buffDuration})
}
