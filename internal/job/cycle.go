package job

import (
	"strandsim/internal/combat"
	"strandsim/internal/util"
)

type phase uint8

const (
	phaseReady phase = iota // idle, possibly still cooling down
	phaseActive
)

// cycle is the shared cooldown -> active -> cooldown skeleton. The
// active -> cooldown transition is detected lazily on the first tick past
// actionEnd.
type cycle struct {
	phase         phase
	cooldownUntil float64
	actionEnd     float64
}

func (c *cycle) coolingDown(now float64) bool {
	return c.phase == phaseReady && now < c.cooldownUntil
}

func (c *cycle) active() bool { return c.phase == phaseActive }

func (c *cycle) begin(now, duration float64) {
	c.phase = phaseActive
	c.actionEnd = now + duration
}

func (c *cycle) elapsed(now float64) bool { return now >= c.actionEnd }

func (c *cycle) rest(now, base, jitter float64, rng util.Roller) {
	c.phase = phaseReady
	c.cooldownUntil = now + base + rng.Float64()*jitter
}

// throttle paces a sub-effect inside an active phase.
type throttle struct{ next float64 }

func (t *throttle) due(now, every float64) bool {
	if now < t.next {
		return false
	}
	t.next = now + every
	return true
}

func roll(rng util.Roller, chance float64) bool { return rng.Float64() < chance }

// ledger is a job's private per-strand state, keyed by strand id.
type ledger[T any] map[string]*T

func (l ledger[T]) of(id string) *T {
	if st, ok := l[id]; ok {
		return st
	}
	st := new(T)
	l[id] = st
	return st
}

func pick(rng util.Roller, ss []*combat.Strand) *combat.Strand {
	if len(ss) == 0 {
		return nil
	}
	return ss[rng.Intn(len(ss))]
}

func jitter(rng util.Roller, spread float64) float64 {
	return (rng.Float64()*2 - 1) * spread
}

func arenaSize(env *combat.Env) combat.Vec2 {
	if env.Arena.X <= 0 || env.Arena.Y <= 0 {
		return combat.Vec2{X: 960, Y: 640}
	}
	return env.Arena
}
