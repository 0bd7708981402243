package job

import "strandsim/internal/combat"

const (
	moteEvery    = 120.0
	moteMinSpeed = 1.0
	moteLife     = 700.0
)

// corruption drops motes behind a fast-moving strand. It has no cooldown.
type corruption struct {
	states ledger[throttle]
}

func (j *corruption) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	if s.Vel.Len() <= moteMinSpeed {
		return res
	}
	if !j.states.of(s.ID).due(env.Time, moteEvery) {
		return res
	}
	e := combat.NewEffect(combat.EffectMote, s.Pos, moteLife)
	e.Radius = 3
	e.Color = "#3b0a45"
	e.SourceID = s.ID
	res.Emit(e)
	return res
}
