// Package job runs the per-character job state machines. Each job keeps
// its own per-strand state; nothing outside the job reads or writes it.
package job

import "strandsim/internal/combat"

type Job interface {
	Update(s *combat.Strand, env *combat.Env) combat.Result
}

func newJob(name combat.Name) Job {
	switch name {
	case combat.Solace:
		return &pacifier{states: ledger[pacifierState]{}}
	case combat.Elowen:
		return newAura(groundingTuning)
	case combat.Kestrel:
		return &sprinter{states: ledger[sprinterState]{}}
	case combat.Vex:
		return &glitch{states: ledger[glitchState]{}}
	case combat.Reverie:
		return newAura(dreamerTuning)
	case combat.Bastion:
		return newAura(foundationTuning)
	case combat.Lumen:
		return &beacon{states: ledger[cycle]{}}
	case combat.Omen:
		return &corruption{states: ledger[throttle]{}}
	case combat.Sage:
		return &scholar{states: ledger[scholarState]{}}
	case combat.Arbiter:
		return &judge{states: ledger[judgeState]{}}
	case combat.Riposte:
		return &duelist{states: ledger[duelState]{}}
	case combat.Nyx:
		return &stalker{states: ledger[stalkerState]{}}
	case combat.Mira:
		return &empath{states: ledger[empathState]{}}
	case combat.Ariadne:
		return &weaver{states: ledger[weaverState]{}}
	}
	return nil
}

// Board routes each strand to its character's job.
type Board struct {
	jobs map[combat.Name]Job
}

func NewBoard() *Board {
	b := &Board{jobs: map[combat.Name]Job{}}
	for _, n := range combat.AllNames() {
		if j := newJob(n); j != nil {
			b.jobs[n] = j
		}
	}
	return b
}

// Update runs the strand's own job. Defeated or hidden strands do nothing.
func (b *Board) Update(s *combat.Strand, env *combat.Env) combat.Result {
	if !s.Active() {
		return combat.Result{}
	}
	j := b.jobs[s.Name]
	if j == nil {
		return combat.Result{}
	}
	return j.Update(s, env)
}

// Tick updates every strand in list order and merges the results.
func (b *Board) Tick(env *combat.Env) combat.Result {
	var out combat.Result
	for _, s := range env.Strands {
		out.Merge(b.Update(s, env))
	}
	return out
}
