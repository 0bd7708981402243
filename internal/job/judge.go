package job

import "strandsim/internal/combat"

const (
	judgeChance   = 0.003
	judgeDuration = 1500.0
	judgeCooldown = 20000.0
	judgeJitter   = 8000.0
	judgeForce    = 0.2
)

type judgeState struct {
	cycle
	a, b string
	pull bool // mortal enemies are pulled together, best friends pushed apart
}

// judge picks one extreme pair and forces the two apart or together.
type judge struct {
	states ledger[judgeState]
}

func (j *judge) Update(s *combat.Strand, env *combat.Env) (res combat.Result) {
	st := j.states.of(s.ID)
	now := env.Time
	if st.coolingDown(now) {
		return res
	}
	if st.active() {
		if st.elapsed(now) {
			st.rest(now, judgeCooldown, judgeJitter, env.Rng)
			st.a, st.b = "", ""
			return res
		}
		a, okA := env.Target(st.a)
		b, okB := env.Target(st.b)
		if okA && okB {
			judgeForces(&res, a, b, st.pull)
		}
		return res
	}
	if !roll(env.Rng, judgeChance) {
		return res
	}
	// every active pair, the judge's own included
	var friends, foes [][2]*combat.Strand
	all := append([]*combat.Strand{s}, combat.Others(s, env.Strands)...)
	for i := 0; i < len(all); i++ {
		for k := i + 1; k < len(all); k++ {
			score := env.Relations.Get(all[i].Name, all[k].Name)
			switch {
			case score >= combat.BestFriend:
				friends = append(friends, [2]*combat.Strand{all[i], all[k]})
			case score <= combat.MortalEnemy:
				foes = append(foes, [2]*combat.Strand{all[i], all[k]})
			}
		}
	}
	pull := false
	pool := friends
	switch {
	case len(friends) > 0 && len(foes) > 0:
		if env.Rng.Float64() < 0.5 {
			pool, pull = foes, true
		}
	case len(foes) > 0:
		pool, pull = foes, true
	case len(friends) == 0:
		return res
	}
	pair := pool[env.Rng.Intn(len(pool))]
	st.begin(now, judgeDuration)
	st.a, st.b, st.pull = pair[0].ID, pair[1].ID, pull

	e := combat.NewEffect(combat.EffectJudgmentLink, pair[0].Pos, judgeDuration)
	e.To = pair[1].Pos
	e.SourceID = pair[0].ID
	e.TargetID = pair[1].ID
	e.Color = "#f5f5f5"
	if pull {
		e.Color = "#d7263d"
		res.Logf("%s rules that %s and %s must face each other.", s.Name, pair[0].Name, pair[1].Name)
	} else {
		res.Logf("%s rules that %s and %s need some space.", s.Name, pair[0].Name, pair[1].Name)
	}
	res.Emit(e)
	judgeForces(&res, pair[0], pair[1], pull)
	return res
}

func judgeForces(res *combat.Result, a, b *combat.Strand, pull bool) {
	dir := combat.Toward(a.Pos, b.Pos).Scale(judgeForce)
	if !pull {
		dir = dir.Scale(-1)
	}
	res.AddForce(a.ID, dir)
	res.AddForce(b.ID, dir.Scale(-1))
}
