package job

import "strandsim/internal/combat"

const (
	duelChance     = 0.004
	scanDuration   = 2000.0
	primeDelay     = 1500.0
	chargeDuration = 2500.0
	duelCooldown   = 20000.0
	duelJitter     = 5000.0
	duelRange      = 300.0
	chargePull     = 0.2
	duelSwing      = 0.05
)

type duelPhase uint8

const (
	duelIdle duelPhase = iota
	duelScanning
	duelPrimed
	duelCharging
)

type duelState struct {
	phase         duelPhase
	cooldownUntil float64
	phaseEnd      float64
	targetID      string
}

// duelist sizes up the nearest strand, waits, then charges it. Respect or
// grudge follows from how the two already felt about each other.
type duelist struct {
	states ledger[duelState]
}

func (j *duelist) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	switch st.phase {
	case duelIdle:
		if now < st.cooldownUntil || !roll(env.Rng, duelChance) {
			return res
		}
		target, _ := combat.Nearest(s.Pos, combat.Within(s.Pos, combat.Others(s, env.Strands), duelRange))
		if target == nil {
			return res
		}
		st.phase, st.phaseEnd, st.targetID = duelScanning, now+scanDuration, target.ID
		e := combat.NewEffect(combat.EffectScanTell, s.Pos, scanDuration)
		e.Radius = s.Radius * 2
		e.Color = "#ff9f1c"
		e.SourceID = s.ID
		e.TargetID = target.ID
		res.Emit(e)
		res.Logf("%s sizes up %s.", s.Name, target.Name)

	case duelScanning:
		if now >= st.phaseEnd {
			st.phase, st.phaseEnd = duelPrimed, now+primeDelay
		}

	case duelPrimed:
		if now < st.phaseEnd {
			return res
		}
		target, ok := env.Target(st.targetID)
		if !ok {
			j.rest(st, now, env)
			return res
		}
		st.phase, st.phaseEnd = duelCharging, now+chargeDuration
		swing := -duelSwing
		if env.Relations.Get(s.Name, target.Name) > 0 {
			swing = duelSwing
		}
		res.Relate(s.Name, target.Name, swing)
		e := combat.NewEffect(combat.EffectChallengeMark, target.Pos, chargeDuration)
		e.Radius = target.Radius * 1.5
		e.Color = "#ff9f1c"
		e.SourceID = s.ID
		e.TargetID = target.ID
		res.Emit(e)
		res.Logf("%s challenges %s to a duel!", s.Name, target.Name)

	case duelCharging:
		if now >= st.phaseEnd {
			j.rest(st, now, env)
			return res
		}
		if target, ok := env.Target(st.targetID); ok {
			s.Vel = s.Vel.Add(combat.Toward(s.Pos, target.Pos).Scale(chargePull))
		}
	}
	return res
}

func (j *duelist) rest(st *duelState, now float64, env *combat.Env) {
	st.phase = duelIdle
	st.targetID = ""
	st.cooldownUntil = now + duelCooldown + env.Rng.Float64()*duelJitter
}
