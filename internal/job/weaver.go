package job

import "strandsim/internal/combat"

const (
	tetherChance   = 0.005
	tetherDuration = 4000.0
	tetherCooldown = 14000.0
	tetherJitter   = 4000.0
	tetherRange    = 220.0
	tetherBump     = 0.03
)

type weaverState struct {
	cycle
	targetID string
}

// weaver ties a tether to a nearby friend. The bump happens once, on creation.
type weaver struct {
	states ledger[weaverState]
}

func (j *weaver) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, tetherCooldown, tetherJitter, env.Rng)
			st.targetID = ""
		}
		return res
	}
	if !roll(env.Rng, tetherChance) {
		return res
	}
	var friends []*combat.Strand
	for _, o := range combat.Within(s.Pos, combat.Others(s, env.Strands), tetherRange) {
		if env.Relations.Get(s.Name, o.Name) >= combat.Friend {
			friends = append(friends, o)
		}
	}
	target := pick(env.Rng, friends)
	if target == nil {
		return res
	}
	st.begin(now, tetherDuration)
	st.targetID = target.ID
	res.Relate(s.Name, target.Name, tetherBump)

	e := combat.NewEffect(combat.EffectTether, s.Pos, tetherDuration)
	e.To = target.Pos
	e.SourceID = s.ID
	e.TargetID = target.ID
	e.Color = "#c0f0ff"
	res.Emit(e)
	res.Logf("%s spins a tether to %s.", s.Name, target.Name)
	return res
}
