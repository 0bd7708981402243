package job

import "strandsim/internal/combat"

const (
	empathChance   = 0.004
	empathDuration = 5000.0
	empathCooldown = 17000.0
	empathJitter   = 5000.0
	empathRange    = 250.0
	empathPerTick  = 0.0005
)

type empathState struct {
	cycle
	a, b string
}

// empath links two other strands and warms them to each other every tick.
type empath struct {
	states ledger[empathState]
}

func (j *empath) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, empathCooldown, empathJitter, env.Rng)
			st.a, st.b = "", ""
			return res
		}
		a, okA := env.Target(st.a)
		b, okB := env.Target(st.b)
		if okA && okB {
			res.Relate(a.Name, b.Name, empathPerTick)
		}
		return res
	}
	if !roll(env.Rng, empathChance) {
		return res
	}
	near := combat.Within(s.Pos, combat.Others(s, env.Strands), empathRange)
	if len(near) < 2 {
		return res
	}
	i := env.Rng.Intn(len(near))
	k := env.Rng.Intn(len(near) - 1)
	if k >= i {
		k++
	}
	a, b := near[i], near[k]
	st.begin(now, empathDuration)
	st.a, st.b = a.ID, b.ID

	e := combat.NewEffect(combat.EffectEmpathLink, a.Pos, empathDuration)
	e.To = b.Pos
	e.SourceID = a.ID
	e.TargetID = b.ID
	e.Color = "#ff8fab"
	res.Emit(e)
	res.Logf("%s weaves empathy between %s and %s.", s.Name, a.Name, b.Name)
	return res
}
