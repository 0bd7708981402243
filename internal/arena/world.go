// Package arena is the host loop. It owns every effect list, applies the
// results the behaviour packages hand back, and moves the strands.
package arena

import (
	"fmt"

	"github.com/rs/zerolog"

	"strandsim/internal/ability"
	"strandsim/internal/combat"
	"strandsim/internal/creature"
	"strandsim/internal/job"
	"strandsim/internal/lowhp"
	"strandsim/internal/util"
)

type Options struct {
	Aggression     combat.Aggression
	TickMs         float64
	LowHPThreshold float64
	ChargePerTick  float64
	ContactDamage  float64
	Arena          combat.Vec2
	Record         bool
}

func (o Options) withDefaults() Options {
	if o.TickMs <= 0 {
		o.TickMs = combat.TickMillis
	}
	if o.LowHPThreshold <= 0 {
		o.LowHPThreshold = 0.3
	}
	if o.Arena.X <= 0 || o.Arena.Y <= 0 {
		o.Arena = combat.Vec2{X: 960, Y: 640}
	}
	return o
}

type World struct {
	opts  Options
	env   combat.Env
	board *job.Board
	log   zerolog.Logger

	Ultimates []combat.ActiveUltimate
	Globals   []combat.GlobalEffect
	Effects   []combat.Effect
	Creatures []*creature.Creature

	casts    map[combat.UltimateKind]int
	defeated []combat.Name
	events   []combat.Event
}

// New builds a world around the given strands. Pass zerolog.Nop() to silence it.
func New(strands []*combat.Strand, rel *combat.Relationships, rng util.Roller, opts Options, log zerolog.Logger) *World {
	opts = opts.withDefaults()
	if rel == nil {
		rel = combat.NewRelationships()
	}
	w := &World{
		opts:  opts,
		board: job.NewBoard(),
		log:   log,
		casts: map[combat.UltimateKind]int{},
		env: combat.Env{
			Delta:     opts.TickMs,
			Rng:       rng,
			Strands:   strands,
			Relations: rel,
			Arena:     opts.Arena,
		},
	}
	for _, s := range strands {
		w.emit("Spawn", map[string]any{
			"id": s.ID, "name": s.Name, "x": s.Pos.X, "y": s.Pos.Y,
			"hp": s.Health, "max_hp": s.MaxHealth,
		})
	}
	return w
}

func (w *World) Time() float64                      { return w.env.Time }
func (w *World) Strands() []*combat.Strand          { return w.env.Strands }
func (w *World) Relations() *combat.Relationships   { return w.env.Relations }
func (w *World) Casts() map[combat.UltimateKind]int { return w.casts }
func (w *World) Events() []combat.Event             { return w.events }

func (w *World) emit(typ string, payload map[string]any) {
	if !w.opts.Record {
		return
	}
	w.events = append(w.events, combat.Event{T: w.env.Time, Type: typ, Payload: payload})
}

func (w *World) logLine(source, id, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	w.log.Debug().Str("source", source).Float64("t", w.env.Time).Msg(text)
	payload := map[string]any{"text": text, "source": source}
	if id != "" {
		payload["id"] = id
	}
	w.emit("LogLine", payload)
}

func (w *World) view() ability.View {
	return ability.View{
		Strands:    w.env.Strands,
		Relations:  w.env.Relations,
		Ultimates:  w.Ultimates,
		Globals:    w.Globals,
		Aggression: w.opts.Aggression,
	}
}

// Step advances the world one tick: upkeep, ultimates, jobs, the low-HP
// overlay, one serialized apply pass, then movement and effect aging.
func (w *World) Step() {
	now := w.env.Time
	w.env.Delta = w.opts.TickMs

	for _, s := range w.env.Strands {
		s.TempSpeedModifier = 1
		s.PruneBuffs(now)
		if s.Mood != combat.MoodNeutral && now >= s.MoodEndTime {
			s.Mood = combat.MoodNeutral
		}
	}

	w.charge()

	for _, s := range w.env.Strands {
		if !s.UltimateReady(now) || !ability.ShouldActivate(s, w.view()) {
			continue
		}
		_, spec, _ := ability.For(s.Name)
		w.activate(s, spec)
	}

	res := w.board.Tick(&w.env)

	for _, s := range w.env.Strands {
		below := lowhp.Below(s, w.opts.LowHPThreshold)
		if below && !s.LowHP {
			w.logLine("system", s.ID, "%s is badly hurt and turns %s.", s.Name, lowhp.Of(s.Name))
			w.emit("LowHP", map[string]any{"id": s.ID, "hp": s.Health})
		}
		s.LowHP = below
		if !below {
			continue
		}
		allies, enemies := combat.Partition(s, w.env.Strands, w.env.Relations)
		s.Vel = s.Vel.Add(lowhp.Apply(s, enemies, allies, now, w.env.Rng))
	}

	w.apply(res)
	w.move()
	w.contact()
	w.age()

	for _, c := range w.Creatures {
		for _, name := range c.Auto(now) {
			w.logLine("creature", c.Name, "%s uses %s.", c.Name, name)
		}
	}

	w.env.Time += w.opts.TickMs
}

func (w *World) charge() {
	now := w.env.Time
	for _, s := range w.env.Strands {
		if !s.Active() || s.UltimateCharge >= s.MaxUltimateCharge {
			continue
		}
		gain := w.opts.ChargePerTick *
			s.BuffMultiplier(combat.BuffLowHPCharge, now) *
			s.BuffMultiplier(combat.DebuffCrash, now)
		s.UltimateCharge = min(s.MaxUltimateCharge, s.UltimateCharge+gain)
	}
}

// apply is the single writer for everything behaviour code asked for this tick.
func (w *World) apply(res combat.Result) {
	for _, ev := range res.Relations {
		w.env.Relations.Apply(ev)
	}
	for _, m := range res.Moods {
		if s := w.env.ByID(m.TargetID); s != nil && !s.Defeated {
			s.Mood, s.MoodEndTime = m.Mood, m.Until
		}
	}
	for id, f := range res.Forces {
		if s := w.env.ByID(id); s != nil && !s.Defeated {
			s.Vel = s.Vel.Add(f)
		}
	}
	w.Effects = append(w.Effects, res.Effects...)
	for _, line := range res.Logs {
		w.logLine("job", "", "%s", line)
	}
}

// age counts every effect list down one tick and drops the expired entries.
func (w *World) age() {
	w.Effects = agePrune(w.Effects, func(e *combat.Effect) *int { return &e.Life })
	w.Ultimates = agePrune(w.Ultimates, func(u *combat.ActiveUltimate) *int { return &u.Life })
	w.Globals = agePrune(w.Globals, func(g *combat.GlobalEffect) *int { return &g.Life })
}

func agePrune[T any](in []T, life func(*T) *int) []T {
	out := in[:0]
	for i := range in {
		l := life(&in[i])
		*l--
		if *l > 0 {
			out = append(out, in[i])
		}
	}
	return out
}

// Run steps until durationMs has elapsed or at most one strand is left standing.
func (w *World) Run(durationMs float64) SimResult {
	for w.env.Time < durationMs && w.standing() > 1 {
		w.Step()
	}
	return w.Result()
}

func (w *World) standing() int {
	n := 0
	for _, s := range w.env.Strands {
		if !s.Defeated {
			n++
		}
	}
	return n
}
