package job

import "strandsim/internal/combat"

const (
	beaconChance   = 0.006
	beaconCooldown = 9000.0
	beaconJitter   = 4000.0
	beaconRadius   = 160.0
	beaconLife     = 1500.0
)

// beacon has no active phase: a successful roll emits one pulse and rests.
type beacon struct {
	states ledger[cycle]
}

func (j *beacon) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if !roll(env.Rng, beaconChance) {
		return res
	}
	e := combat.NewEffect(combat.EffectLightPulse, s.Pos, beaconLife)
	e.Radius = beaconRadius
	e.Color = "#fff4c2"
	e.SourceID = s.ID
	res.Emit(e)
	st.rest(now, beaconCooldown, beaconJitter, env.Rng)
	res.Logf("%s sends out a pulse of light.", s.Name)
	return res
}
