package job

import "strandsim/internal/combat"

const (
	studyChance   = 0.005
	studyDuration = 4000.0
	studyCooldown = 15000.0
	studyJitter   = 5000.0
	studyRange    = 200.0
	studyGap      = 60.0 // stops approaching inside this distance
	studyPull     = 0.05
	glyphEvery    = 800.0
	glyphLife     = 1000.0
	studyNudge    = 0.02
)

type scholarState struct {
	cycle
	targetID string
	glyph    throttle
}

// scholar picks a nearby strand, follows it while studying and warms to it
// slightly once done.
type scholar struct {
	states ledger[scholarState]
}

func (j *scholar) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		target, ok := env.Target(st.targetID)
		if st.elapsed(now) {
			if ok {
				res.Relate(s.Name, target.Name, studyNudge)
				res.Logf("%s finishes studying %s.", s.Name, target.Name)
			}
			st.rest(now, studyCooldown, studyJitter, env.Rng)
			st.targetID = ""
			return res
		}
		if !ok {
			return res
		}
		if combat.Dist(s.Pos, target.Pos) > studyGap {
			s.Vel = s.Vel.Add(combat.Toward(s.Pos, target.Pos).Scale(studyPull))
		}
		if st.glyph.due(now, glyphEvery) {
			e := combat.NewEffect(combat.EffectStudyGlyph, target.Pos, glyphLife)
			e.Radius = 10
			e.Color = "#8fd3ff"
			e.SourceID = s.ID
			e.TargetID = target.ID
			res.Emit(e)
		}
		return res
	}
	if !roll(env.Rng, studyChance) {
		return res
	}
	target := pick(env.Rng, combat.Within(s.Pos, combat.Others(s, env.Strands), studyRange))
	if target == nil {
		return res
	}
	st.begin(now, studyDuration)
	st.targetID = target.ID
	st.glyph = throttle{next: now}
	res.Logf("%s begins studying %s.", s.Name, target.Name)
	return res
}
