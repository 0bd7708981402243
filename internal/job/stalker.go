package job

import "strandsim/internal/combat"

const (
	stalkChance   = 0.004
	stalkDuration = 6000.0
	stalkCooldown = 18000.0
	stalkJitter   = 6000.0
	stalkPull     = 0.12
	pulseEvery    = 900.0
	pulseRange    = 120.0
	pulseLife     = 700.0
	pulseBite     = -0.05
)

type stalkerState struct {
	cycle
	targetID string
	pulse    throttle
}

// stalker hunts its most hated enemy and sours the grudge with every pulse
// that lands.
type stalker struct {
	states ledger[stalkerState]
}

func (j *stalker) Stalking(id string) bool {
	st, ok := j.states[id]
	return ok && st.active()
}

func (j *stalker) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, stalkCooldown, stalkJitter, env.Rng)
			st.targetID = ""
			return res
		}
		target, ok := env.Target(st.targetID)
		if !ok {
			st.rest(now, stalkCooldown, stalkJitter, env.Rng)
			st.targetID = ""
			res.Logf("%s loses the trail.", s.Name)
			return res
		}
		s.Vel = s.Vel.Add(combat.Toward(s.Pos, target.Pos).Scale(stalkPull))
		if st.pulse.due(now, pulseEvery) {
			e := combat.NewEffect(combat.EffectDarkPulse, s.Pos, pulseLife)
			e.Radius = pulseRange
			e.Color = "#2b193d"
			e.SourceID = s.ID
			e.TargetID = target.ID
			res.Emit(e)
			if combat.Dist(s.Pos, target.Pos) <= pulseRange {
				res.Relate(s.Name, target.Name, pulseBite)
			}
		}
		return res
	}
	if !roll(env.Rng, stalkChance) {
		return res
	}
	var target *combat.Strand
	lowest := combat.MortalEnemy
	for _, o := range combat.Others(s, env.Strands) {
		score := env.Relations.Get(s.Name, o.Name)
		if score <= lowest && (target == nil || score < lowest) {
			target, lowest = o, score
		}
	}
	if target == nil {
		return res
	}
	st.begin(now, stalkDuration)
	st.targetID = target.ID
	st.pulse = throttle{next: now}
	res.Logf("%s begins stalking %s.", s.Name, target.Name)
	return res
}
