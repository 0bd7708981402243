package arena

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandsim/internal/combat"
	"strandsim/internal/creature"
	"strandsim/internal/util"
)

// idle rolls high enough that no job ever activates.
var idle = util.Fixed(0.99)

func placed(id string, n combat.Name, x, y float64) *combat.Strand {
	s := combat.NewStrand(id, n, 100)
	s.Pos = combat.Vec2{X: x, Y: y}
	return s
}

func TestBerserkOverlayAfterOneTick(t *testing.T) {
	r := placed("r", combat.Riposte, 100, 100)
	foe := placed("n", combat.Nyx, 800, 500)
	w := New([]*combat.Strand{r, foe}, nil, idle, Options{}, zerolog.Nop())

	r.Health = 50
	w.Step()
	assert.Equal(t, 1.0, r.TempSpeedModifier)
	assert.Empty(t, r.TempBuffs)

	r.Health = 25
	w.Step()
	assert.True(t, r.LowHP)
	assert.InDelta(t, 1.2, r.TempSpeedModifier, 1e-9)
	require.Len(t, r.TempBuffs, 1)
	assert.Equal(t, combat.BuffLowHPBerserk, r.TempBuffs[0].Kind)
	assert.Equal(t, 1.3, r.TempBuffs[0].Multiplier)

	w.Step()
	assert.InDelta(t, 1.2, r.TempSpeedModifier, 1e-9)
	assert.Len(t, r.TempBuffs, 1)
}

func TestApplyIsOneSerializedPass(t *testing.T) {
	a := placed("a", combat.Mira, 100, 100)
	b := placed("b", combat.Sage, 300, 100)
	w := New([]*combat.Strand{a, b}, nil, idle, Options{}, zerolog.Nop())

	var res combat.Result
	res.Relate(combat.Mira, combat.Sage, 0.1)
	res.Relate(combat.Sage, combat.Mira, 0.2)
	res.AddForce("b", combat.Vec2{X: 1})
	res.Moods = append(res.Moods, combat.MoodChange{TargetID: "a", Mood: combat.MoodCalm, Until: 500})
	res.Emit(combat.NewEffect(combat.EffectRipple, a.Pos, 100))
	w.apply(res)

	assert.InDelta(t, combat.Acquaintance+0.3, w.Relations().Get(combat.Sage, combat.Mira), 1e-9)
	assert.Equal(t, combat.Vec2{X: 1}, b.Vel)
	assert.Equal(t, combat.MoodCalm, a.Mood)
	assert.Equal(t, 500.0, a.MoodEndTime)
	assert.Len(t, w.Effects, 1)
}

func TestMoodRevertsToNeutral(t *testing.T) {
	a := placed("a", combat.Mira, 100, 100)
	w := New([]*combat.Strand{a}, nil, idle, Options{}, zerolog.Nop())
	a.Mood, a.MoodEndTime = combat.MoodCalm, 30

	w.Step()
	assert.Equal(t, combat.MoodCalm, a.Mood)
	for w.Time() <= 30 {
		w.Step()
	}
	w.Step()
	assert.Equal(t, combat.MoodNeutral, a.Mood)
}

func TestSanctuaryHealsAndCoolsDown(t *testing.T) {
	solace := placed("s", combat.Solace, 400, 300)
	elowen := placed("e", combat.Elowen, 450, 300)
	mira := placed("m", combat.Mira, 400, 360)
	for _, s := range []*combat.Strand{elowen, mira} {
		s.Health = 50
	}
	solace.UltimateCharge = solace.MaxUltimateCharge
	rel := combat.NewRelationships()
	rel.Set(combat.Solace, combat.Elowen, combat.Friend)
	rel.Set(combat.Solace, combat.Mira, combat.Ally)
	rel.Set(combat.Elowen, combat.Mira, combat.Friend)

	var buf bytes.Buffer
	w := New([]*combat.Strand{solace, elowen, mira}, rel, idle, Options{Record: true}, zerolog.New(&buf))
	w.Step()

	assert.Equal(t, 75.0, elowen.Health)
	assert.Equal(t, 75.0, mira.Health)
	assert.Equal(t, 100.0, solace.Health)
	assert.Equal(t, 0.0, solace.UltimateCharge)
	assert.Equal(t, 20000.0, solace.UltimateCooldown)
	require.Len(t, w.Ultimates, 1)
	assert.Equal(t, combat.UltSanctuary, w.Ultimates[0].Kind)
	assert.Equal(t, 1, w.Casts()[combat.UltSanctuary])
	assert.Contains(t, buf.String(), "ultimate activated")

	var kinds []string
	for _, ev := range w.Events() {
		kinds = append(kinds, ev.Type)
	}
	assert.Contains(t, kinds, "Ultimate")

	solace.UltimateCharge = solace.MaxUltimateCharge
	w.Step()
	assert.Equal(t, 1, w.Casts()[combat.UltSanctuary], "cooldown holds the second cast")
}

func TestSystemCrashHalvesEnemyCharge(t *testing.T) {
	vex := placed("v", combat.Vex, 100, 100)
	foe := placed("f", combat.Elowen, 800, 500)
	foe.Health = 50
	vex.UltimateCharge = vex.MaxUltimateCharge
	w := New([]*combat.Strand{vex, foe}, nil, idle, Options{Aggression: combat.Aggressive, ChargePerTick: 0.05}, zerolog.Nop())

	w.Step()
	require.Len(t, w.Globals, 1)
	assert.Equal(t, combat.GlobalSystemCrash, w.Globals[0].Kind)
	assert.Empty(t, w.Ultimates)
	assert.True(t, foe.HasBuff(combat.DebuffCrash, w.Time()))
	assert.InDelta(t, 0.05, foe.UltimateCharge, 1e-9)

	w.Step()
	assert.InDelta(t, 0.075, foe.UltimateCharge, 1e-9)
	assert.InDelta(t, 0.05, vex.UltimateCharge, 1e-9)
}

func TestContactHurtsEnemiesOnly(t *testing.T) {
	a := placed("a", combat.Nyx, 100, 100)
	b := placed("b", combat.Vex, 105, 100)
	c := placed("c", combat.Mira, 400, 400)
	d := placed("d", combat.Elowen, 405, 400)
	rel := combat.NewRelationships()
	rel.Set(combat.Mira, combat.Elowen, combat.Friend)
	w := New([]*combat.Strand{a, b, c, d}, rel, idle, Options{ContactDamage: 0.4}, zerolog.Nop())

	w.Step()
	assert.InDelta(t, 99.6, a.Health, 1e-9)
	assert.InDelta(t, 99.6, b.Health, 1e-9)
	assert.Equal(t, combat.MoodAgitated, a.Mood)
	assert.Equal(t, 4000.0, a.MoodEndTime)
	assert.Equal(t, 100.0, c.Health)
	assert.Equal(t, combat.MoodNeutral, d.Mood)
}

func TestWallsKeepStrandsInside(t *testing.T) {
	a := placed("a", combat.Kestrel, 5, 635)
	a.Vel = combat.Vec2{X: -2, Y: 2}
	w := New([]*combat.Strand{a}, nil, idle, Options{}, zerolog.Nop())
	w.Step()
	assert.Equal(t, a.Radius, a.Pos.X)
	assert.Equal(t, 640-a.Radius, a.Pos.Y)
	assert.Greater(t, a.Vel.X, 0.0)
	assert.Less(t, a.Vel.Y, 0.0)
}

func TestAgePrune(t *testing.T) {
	in := []combat.Effect{{Life: 1}, {Life: 3}, {Life: 2}}
	out := agePrune(in, func(e *combat.Effect) *int { return &e.Life })
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].Life)
	assert.Equal(t, 1, out[1].Life)
}

func TestCreaturesTickWithTheWorld(t *testing.T) {
	w := New([]*combat.Strand{placed("a", combat.Sage, 100, 100)}, nil, idle, Options{}, zerolog.Nop())
	w.Creatures = []*creature.Creature{{
		Name: "Mossback", Kind: creature.Verdant, MaxEvolution: 10,
		Abilities: []*creature.Ability{{Name: "Thornlash", CooldownDuration: 1000}},
	}}
	w.Step()
	res := w.Result()
	require.Len(t, res.Creatures, 1)
	assert.False(t, res.Creatures[0].Abilities[0].Ready)
	assert.Greater(t, res.Creatures[0].Abilities[0].Fraction, 0.9)
	assert.InDelta(t, 0.1, res.Creatures[0].Evolution, 1e-9)
}

func roster() ([]*combat.Strand, *combat.Relationships) {
	var ss []*combat.Strand
	for i, n := range combat.AllNames() {
		ss = append(ss, placed(string(n), n, 120+float64(i%5)*170, 120+float64(i/5)*180))
	}
	rel := combat.NewRelationships()
	rel.Set(combat.Solace, combat.Elowen, combat.BestFriend)
	rel.Set(combat.Nyx, combat.Vex, combat.MortalEnemy)
	rel.Set(combat.Ariadne, combat.Mira, combat.Friend)
	rel.Set(combat.Riposte, combat.Nyx, -0.4)
	return ss, rel
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() SimResult {
		ss, rel := roster()
		w := New(ss, rel, util.New(42), Options{ChargePerTick: 0.2, ContactDamage: 1}, zerolog.Nop())
		return w.Run(20000)
	}
	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Equal(t, len(combat.AllNames()), len(first.Defeated)+len(first.Survivors))
	assert.NotEmpty(t, first.Relationships)
	assert.Nil(t, first.Events)
}

func TestRunRecordsEvents(t *testing.T) {
	ss, rel := roster()
	w := New(ss, rel, util.New(3), Options{Record: true}, zerolog.Nop())
	res := w.Run(1000)
	require.NotEmpty(t, res.Events)
	assert.Equal(t, "Spawn", res.Events[0].Type)
	assert.GreaterOrEqual(t, res.Duration, 1000.0)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(MarshalPretty(res), &decoded))
	assert.Contains(t, decoded, "survivors")
}
