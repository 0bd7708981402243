package job

import "strandsim/internal/combat"

const (
	pacifyChance   = 0.005
	pacifyDuration = 4000.0
	pacifyCooldown = 15000.0
	pacifyJitter   = 5000.0
	pacifyRange    = 150.0
	pacifyCalmFor  = 5000.0
	rippleEvery    = 600.0
	rippleLife     = 900.0
)

type pacifierState struct {
	cycle
	targetID string
	ripple   throttle
}

// pacifier calms the nearest agitated strand.
type pacifier struct {
	states ledger[pacifierState]
}

func (j *pacifier) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, pacifyCooldown, pacifyJitter, env.Rng)
			st.targetID = ""
			return res
		}
		target, ok := env.Target(st.targetID)
		if !ok {
			return res
		}
		res.Moods = append(res.Moods, combat.MoodChange{TargetID: target.ID, Mood: combat.MoodCalm, Until: now + pacifyCalmFor})
		if st.ripple.due(now, rippleEvery) {
			e := combat.NewEffect(combat.EffectRipple, target.Pos, rippleLife)
			e.Radius = 40
			e.Color = "#9fe8ff"
			e.SourceID = s.ID
			e.TargetID = target.ID
			res.Emit(e)
		}
		return res
	}
	if !roll(env.Rng, pacifyChance) {
		return res
	}
	var agitated []*combat.Strand
	for _, o := range combat.Others(s, env.Strands) {
		if o.Mood == combat.MoodAgitated {
			agitated = append(agitated, o)
		}
	}
	target, _ := combat.Nearest(s.Pos, combat.Within(s.Pos, agitated, pacifyRange))
	if target == nil {
		return res
	}
	st.begin(now, pacifyDuration)
	st.targetID = target.ID
	st.ripple = throttle{next: now}
	res.Logf("%s hums softly to calm %s.", s.Name, target.Name)
	return res
}
