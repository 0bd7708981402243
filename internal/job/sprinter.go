package job

import (
	"math"

	"strandsim/internal/combat"
)

const (
	sprintChance   = 0.006
	sprintDuration = 1200.0
	sprintCooldown = 8000.0
	sprintJitter   = 3000.0
	sprintBoost    = 3.0
	sprintSpeedMul = 1.6
	sprintStill    = 0.1 // below this speed the heading is random
	trailEvery     = 50.0
	trailLife      = 400.0
)

type sprinterState struct {
	cycle
	trail throttle
}

type sprinter struct {
	states ledger[sprinterState]
}

func (j *sprinter) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, sprintCooldown, sprintJitter, env.Rng)
			return res
		}
		s.TempSpeedModifier *= sprintSpeedMul
		if st.trail.due(now, trailEvery) {
			e := combat.NewEffect(combat.EffectEnergyTrail, s.Pos, trailLife)
			e.Radius = s.Radius * 0.6
			e.Color = "#ffe066"
			e.SourceID = s.ID
			res.Emit(e)
		}
		return res
	}
	if !roll(env.Rng, sprintChance) {
		return res
	}
	heading := s.Vel.Norm()
	if s.Vel.Len() < sprintStill {
		heading = combat.Heading(env.Rng.Float64() * 2 * math.Pi)
	}
	s.Vel = s.Vel.Add(heading.Scale(sprintBoost))
	s.TempSpeedModifier *= sprintSpeedMul
	st.begin(now, sprintDuration)
	st.trail = throttle{next: now}
	res.Logf("%s bursts into a sprint!", s.Name)
	return res
}
