package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsetPairsReadAsAcquaintance(t *testing.T) {
	r := NewRelationships()
	names := AllNames()
	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, Acquaintance, r.Get(a, b), "%s/%s", a, b)
		}
	}

	var nilMatrix *Relationships
	assert.Equal(t, Acquaintance, nilMatrix.Get(Sage, Nyx))
}

func TestGetIsSymmetric(t *testing.T) {
	r := NewRelationships()
	r.Set(Nyx, Sage, MortalEnemy)
	r.Apply(RelationEvent{S1: Mira, S2: Elowen, Modifier: 0.3})

	assert.Equal(t, MortalEnemy, r.Get(Sage, Nyx))
	assert.Equal(t, r.Get(Mira, Elowen), r.Get(Elowen, Mira))
	assert.InDelta(t, 0.4, r.Get(Elowen, Mira), 1e-9)
}

func TestApplyStaysInsideScale(t *testing.T) {
	r := NewRelationships()
	for i := 0; i < 100; i++ {
		r.Apply(RelationEvent{S1: Vex, S2: Bastion, Modifier: -0.25})
		r.Apply(RelationEvent{S1: Lumen, S2: Solace, Modifier: 0.25})
	}
	assert.Equal(t, MinScore, r.Get(Vex, Bastion))
	assert.Equal(t, BestFriend, r.Get(Lumen, Solace))
	assert.True(t, r.Get(Vex, Bastion) <= MortalEnemy)
	assert.True(t, r.Get(Lumen, Solace) >= BestFriend)
	assert.True(t, r.Get(Vex, Bastion) < r.Get(Lumen, Solace))
}

func TestMortalEnemiesCanSinkFurther(t *testing.T) {
	r := NewRelationships()
	r.Set(Nyx, Vex, MortalEnemy)
	r.Apply(RelationEvent{S1: Nyx, S2: Vex, Modifier: -0.05})
	assert.InDelta(t, MortalEnemy-0.05, r.Get(Vex, Nyx), 1e-9)
	assert.Equal(t, "mortal_enemy", LevelOf(r.Get(Nyx, Vex)))

	r.Set(Sage, Omen, -5)
	assert.Equal(t, MinScore, r.Get(Sage, Omen))
}

func TestSelfPairsAreIgnored(t *testing.T) {
	r := NewRelationships()
	r.Set(Sage, Sage, BestFriend)
	r.Apply(RelationEvent{S1: Sage, S2: Sage, Modifier: 1})
	assert.Empty(t, r.Pairs())
}

func TestLevels(t *testing.T) {
	assert.Equal(t, "mortal_enemy", LevelOf(-1))
	assert.Equal(t, "mortal_enemy", LevelOf(MinScore))
	assert.Equal(t, "mortal_enemy", LevelOf(0))
	assert.Equal(t, "acquaintance", LevelOf(0.3))
	assert.Equal(t, "ally", LevelOf(0.75))
	assert.Equal(t, "best_friend", LevelOf(0.8))

	v, err := ParseLevel("Best Friend")
	require.NoError(t, err)
	assert.Equal(t, BestFriend, v)
	v, err = ParseLevel("mortalenemy")
	require.NoError(t, err)
	assert.Equal(t, MortalEnemy, v)
	_, err = ParseLevel("rival")
	assert.Error(t, err)
}

func TestPairsSorted(t *testing.T) {
	r := NewRelationships()
	r.Set(Vex, Arbiter, Friend)
	r.Set(Bastion, Ariadne, Ally)
	pairs := r.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{A: Arbiter, B: Vex, Score: Friend, Level: "friend"}, pairs[0])
	assert.Equal(t, Ariadne, pairs[1].A)
}
