package job

import "strandsim/internal/combat"

const (
	glitchChance   = 0.004
	glitchDuration = 2500.0
	glitchCooldown = 14000.0
	glitchJitter   = 6000.0
	glitchPull     = 0.15
	glitchEvery    = 80.0
	glitchStutter  = 0.5 // chance a due stutter actually draws
	glitchLife     = 120.0
)

type glitchState struct {
	cycle
	dest    combat.Vec2
	stutter throttle
}

// glitch bolts for a random point on the arena edge, flickering as it goes.
type glitch struct {
	states ledger[glitchState]
}

func (j *glitch) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, glitchCooldown, glitchJitter, env.Rng)
			return res
		}
		s.Vel = s.Vel.Add(combat.Toward(s.Pos, st.dest).Scale(glitchPull))
		if st.stutter.due(now, glitchEvery) && env.Rng.Float64() < glitchStutter {
			e := combat.NewEffect(combat.EffectGlitchRect, s.Pos.Add(combat.Vec2{X: jitter(env.Rng, 20), Y: jitter(env.Rng, 20)}), glitchLife)
			e.Size = combat.Vec2{X: 8 + env.Rng.Float64()*24, Y: 4 + env.Rng.Float64()*10}
			e.Color = "#ff2e88"
			e.SourceID = s.ID
			res.Emit(e)
		}
		return res
	}
	if !roll(env.Rng, glitchChance) {
		return res
	}
	st.dest = edgePoint(env)
	st.begin(now, glitchDuration)
	st.stutter = throttle{next: now}
	res.Logf("%s glitches out toward the edge of the arena!", s.Name)
	return res
}

func edgePoint(env *combat.Env) combat.Vec2 {
	size := arenaSize(env)
	t := env.Rng.Float64()
	switch env.Rng.Intn(4) {
	case 0:
		return combat.Vec2{X: t * size.X, Y: 0}
	case 1:
		return combat.Vec2{X: size.X, Y: t * size.Y}
	case 2:
		return combat.Vec2{X: t * size.X, Y: size.Y}
	default:
		return combat.Vec2{X: 0, Y: t * size.Y}
	}
}
