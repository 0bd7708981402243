package lowhp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandsim/internal/combat"
	"strandsim/internal/util"
)

func strand(id string, n combat.Name, x, y float64) *combat.Strand {
	s := combat.NewStrand(id, n, 100)
	s.Pos = combat.Vec2{X: x, Y: y}
	return s
}

func TestEveryNameHasAnArchetype(t *testing.T) {
	for _, n := range combat.AllNames() {
		_, ok := archetypes[n]
		assert.True(t, ok, n)
	}
}

func TestBelow(t *testing.T) {
	s := strand("a", combat.Sage, 0, 0)
	s.Health = 29
	assert.True(t, Below(s, 0.3))
	s.Health = 30
	assert.False(t, Below(s, 0.3))
	s.Health = 0
	s.Defeated = true
	assert.False(t, Below(s, 0.3))
}

func TestFleeSteersAway(t *testing.T) {
	s := strand("s", combat.Sage, 0, 0)
	far := strand("far", combat.Nyx, 0, 100)
	near := strand("near", combat.Vex, 10, 0)
	f := Apply(s, []*combat.Strand{far, near}, nil, 0, util.Fixed(0))
	assert.InDelta(t, -fleeForce, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)
	assert.InDelta(t, fleeSpeed, s.TempSpeedModifier, 1e-9)
}

func TestBerserkBuffIsNotStacked(t *testing.T) {
	r := strand("r", combat.Riposte, 0, 0)
	foe := strand("f", combat.Nyx, 0, 50)

	f := Apply(r, []*combat.Strand{foe}, nil, 0, util.Fixed(0))
	assert.InDelta(t, berserkForce, f.Y, 1e-9)
	assert.InDelta(t, berserkSpeed, r.TempSpeedModifier, 1e-9)
	require.Len(t, r.TempBuffs, 1)
	assert.Equal(t, combat.Buff{Kind: combat.BuffLowHPBerserk, Multiplier: berserkMult, EndTime: buffDuration}, r.TempBuffs[0])

	Apply(r, []*combat.Strand{foe}, nil, 500, util.Fixed(0))
	require.Len(t, r.TempBuffs, 1)
	assert.Equal(t, buffDuration, r.TempBuffs[0].EndTime, "live buff is not refreshed")

	Apply(r, []*combat.Strand{foe}, nil, 1000, util.Fixed(0))
	require.Len(t, r.TempBuffs, 1)
	assert.Equal(t, 2000.0, r.TempBuffs[0].EndTime)
}

func TestSeekAllyFallsBackToFleeing(t *testing.T) {
	m := strand("m", combat.Mira, 0, 0)
	foe := strand("f", combat.Nyx, 10, 0)
	friend := strand("a", combat.Elowen, 0, -40)

	f := Apply(m, []*combat.Strand{foe}, []*combat.Strand{friend}, 0, util.Fixed(0))
	assert.InDelta(t, -seekForce, f.Y, 1e-9)

	m.TempSpeedModifier = 1
	f = Apply(m, []*combat.Strand{foe}, nil, 0, util.Fixed(0))
	assert.InDelta(t, -weakFlee, f.X, 1e-9)
	assert.InDelta(t, seekSpeed, m.TempSpeedModifier, 1e-9)
}

func TestHuddleHeadsForCentroid(t *testing.T) {
	b := strand("b", combat.Bastion, 0, 0)
	allies := []*combat.Strand{strand("1", combat.Solace, 100, 100), strand("2", combat.Mira, 100, -100)}
	f := Apply(b, nil, allies, 0, util.Fixed(0))
	assert.InDelta(t, huddleForce, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)
	assert.InDelta(t, huddleSpeed, b.TempSpeedModifier, 1e-9)

	assert.Equal(t, combat.Vec2{}, Apply(b, nil, nil, 0, util.Fixed(0)))
}

func TestDesperateChargeOnlyBuffs(t *testing.T) {
	l := strand("l", combat.Lumen, 0, 0)
	f := Apply(l, []*combat.Strand{strand("f", combat.Nyx, 5, 0)}, nil, 100, util.Fixed(0))
	assert.Equal(t, combat.Vec2{}, f)
	assert.Equal(t, 1.0, l.TempSpeedModifier)
	assert.Equal(t, chargeRateMult, l.BuffMultiplier(combat.BuffLowHPCharge, 100))
	assert.Equal(t, 1.0, l.BuffMultiplier(combat.BuffLowHPCharge, 1100))
}

func TestErraticUsesRoll(t *testing.T) {
	k := strand("k", combat.Kestrel, 0, 0)
	f := Apply(k, nil, nil, 0, util.Fixed(0.25))
	assert.InDelta(t, 0, f.X, 1e-9)
	assert.InDelta(t, erraticForce, f.Y, 1e-9)
	assert.InDelta(t, erraticSpeed, k.TempSpeedModifier, 1e-9)
}

func TestDefaultFleesWeakly(t *testing.T) {
	a := strand("a", combat.Arbiter, 0, 0)
	f := Apply(a, []*combat.Strand{strand("f", combat.Nyx, 0, 10)}, nil, 0, util.Fixed(0))
	assert.InDelta(t, -weakFlee, f.Y, 1e-9)
	assert.Equal(t, 1.0, a.TempSpeedModifier)
	assert.Equal(t, combat.Vec2{}, Apply(a, nil, nil, 0, util.Fixed(0)))
}
