package job

import "strandsim/internal/combat"

// auraTuning covers the jobs that slow their own strand down and pulse a
// visual around it while active.
type auraTuning struct {
	verb     string
	chance   float64
	duration float64
	cooldown float64
	jitter   float64
	slow     float64 // velocity factor per active tick
	every    float64
	kind     combat.EffectKind
	life     float64
	radius   float64
	color    string
	scatter  float64 // random offset from the strand, per axis
}

var (
	groundingTuning = auraTuning{
		verb:   "kneels and draws strength from the ground",
		chance: 0.004, duration: 3000, cooldown: 12000, jitter: 4000,
		slow: 0.9, every: 500,
		kind: combat.EffectGroundingAura, life: 900, radius: 40, color: "#7ed957", scatter: 14,
	}
	dreamerTuning = auraTuning{
		verb:   "drifts into a daydream",
		chance: 0.005, duration: 5000, cooldown: 16000, jitter: 5000,
		slow: 0.95, every: 700,
		kind: combat.EffectDistortionRing, life: 1200, radius: 30, color: "#b58cff",
	}
	foundationTuning = auraTuning{
		verb:   "plants their feet and becomes immovable",
		chance: 0.004, duration: 6000, cooldown: 18000, jitter: 6000,
		slow: 0.85, every: 400,
		kind: combat.EffectFoundationAura, life: 800, radius: 90, color: "#c8a15a",
	}
)

type auraState struct {
	cycle
	pulse    throttle
	prevGlow string
}

type aura struct {
	tuning auraTuning
	states ledger[auraState]
}

func newAura(t auraTuning) *aura {
	return &aura{tuning: t, states: ledger[auraState]{}}
}

func (j *aura) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	t := j.tuning
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, t.cooldown, t.jitter, env.Rng)
			s.GlowColor = st.prevGlow
			return res
		}
		s.Vel = s.Vel.Scale(t.slow)
		if st.pulse.due(now, t.every) {
			pos := s.Pos
			if t.scatter > 0 {
				pos = pos.Add(combat.Vec2{X: jitter(env.Rng, t.scatter), Y: jitter(env.Rng, t.scatter)})
			}
			e := combat.NewEffect(t.kind, pos, t.life)
			e.Radius = t.radius
			e.Color = t.color
			e.SourceID = s.ID
			res.Emit(e)
		}
		return res
	}
	if !roll(env.Rng, t.chance) {
		return res
	}
	st.begin(now, t.duration)
	st.pulse = throttle{next: now}
	st.prevGlow = s.GlowColor
	s.GlowColor = t.color
	res.Logf("%s %s.", s.Name, t.verb)
	return res
}
