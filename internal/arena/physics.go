package arena

import (
	"math"

	"strandsim/internal/combat"
)

const (
	wanderForce  = 0.05
	friction     = 0.98
	baseMaxSpeed = 2.0 // px per 60Hz tick at Speed 1
	bounceLoss   = 0.8
	contactPush  = 0.5
	agitatedFor  = 4000.0
)

// move integrates velocity into position with a small random wander, a
// speed cap scaled by the strand's modifiers, and walls that bounce.
func (w *World) move() {
	scale := w.opts.TickMs / combat.TickMillis
	size := w.opts.Arena
	for _, s := range w.env.Strands {
		if s.Defeated {
			s.Vel = combat.Vec2{}
			continue
		}
		s.Vel = s.Vel.Add(combat.Heading(w.env.Rng.Float64() * 2 * math.Pi).Scale(wanderForce))
		s.Vel = s.Vel.Scale(friction)
		limit := baseMaxSpeed * s.Speed * s.TempSpeedModifier
		if l := s.Vel.Len(); l > limit {
			s.Vel = s.Vel.Scale(limit / l)
		}
		s.Pos = s.Pos.Add(s.Vel.Scale(scale))

		r := s.Radius
		if s.Pos.X < r {
			s.Pos.X, s.Vel.X = r, math.Abs(s.Vel.X)*bounceLoss
		} else if s.Pos.X > size.X-r {
			s.Pos.X, s.Vel.X = size.X-r, -math.Abs(s.Vel.X)*bounceLoss
		}
		if s.Pos.Y < r {
			s.Pos.Y, s.Vel.Y = r, math.Abs(s.Vel.Y)*bounceLoss
		} else if s.Pos.Y > size.Y-r {
			s.Pos.Y, s.Vel.Y = size.Y-r, -math.Abs(s.Vel.Y)*bounceLoss
		}
	}
}

// contact hurts overlapping strands that are not friends. Both sides take
// damage, get shoved apart and turn agitated.
func (w *World) contact() {
	now := w.env.Time
	ss := w.env.Strands
	for i := 0; i < len(ss); i++ {
		for k := i + 1; k < len(ss); k++ {
			a, b := ss[i], ss[k]
			if !a.Active() || !b.Active() {
				continue
			}
			if combat.Dist(a.Pos, b.Pos) >= a.Radius+b.Radius {
				continue
			}
			if w.env.Relations.Get(a.Name, b.Name) > combat.Acquaintance {
				continue
			}
			push := combat.Toward(b.Pos, a.Pos)
			if push == (combat.Vec2{}) {
				push = combat.Vec2{X: 1}
			}
			a.Vel = a.Vel.Add(push.Scale(contactPush))
			b.Vel = b.Vel.Add(push.Scale(-contactPush))
			a.Mood, a.MoodEndTime = combat.MoodAgitated, now+agitatedFor
			b.Mood, b.MoodEndTime = combat.MoodAgitated, now+agitatedFor
			w.damage(a, w.opts.ContactDamage*b.BuffMultiplier(combat.BuffLowHPBerserk, now), b)
			w.damage(b, w.opts.ContactDamage*a.BuffMultiplier(combat.BuffLowHPBerserk, now), a)
		}
	}
}
