package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(id string, name Name, x, y float64) *Strand {
	s := NewStrand(id, name, 100)
	s.Pos = Vec2{X: x, Y: y}
	return s
}

func TestPartitionExcludesSelfHiddenAndDefeated(t *testing.T) {
	self := at("self", Mira, 0, 0)
	friend := at("f", Elowen, 10, 0)
	stranger := at("e", Nyx, 20, 0)
	hidden := at("h", Lumen, 5, 0)
	hidden.Invisible = true
	dead := at("d", Sage, 5, 5)
	dead.Defeated = true
	between := at("b", Vex, 30, 0)

	rel := NewRelationships()
	rel.Set(Mira, Elowen, Friend)
	rel.Set(Mira, Lumen, BestFriend)
	rel.Set(Mira, Vex, 0.3)

	allies, enemies := Partition(self, []*Strand{self, friend, stranger, hidden, dead, between}, rel)
	assert.Equal(t, []*Strand{friend}, allies)
	assert.Equal(t, []*Strand{stranger}, enemies)
}

func TestNearestKeepsFirstOnTie(t *testing.T) {
	a := at("a", Sage, 3, 4)
	b := at("b", Nyx, -3, -4)
	c := at("c", Vex, 10, 0)
	got, d := Nearest(Vec2{}, []*Strand{c, a, b})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 25.0, d)

	none, _ := Nearest(Vec2{}, nil)
	assert.Nil(t, none)
}

func TestWithin(t *testing.T) {
	a := at("a", Sage, 3, 4)
	b := at("b", Nyx, 6, 8)
	assert.Equal(t, []*Strand{a}, Within(Vec2{}, []*Strand{a, b}, 5))
}

func TestEnvTarget(t *testing.T) {
	a := at("a", Sage, 0, 0)
	env := &Env{Strands: []*Strand{a}}
	got, ok := env.Target("a")
	assert.True(t, ok)
	assert.Same(t, a, got)

	a.Invisible = true
	_, ok = env.Target("a")
	assert.False(t, ok)
	_, ok = env.Target("missing")
	assert.False(t, ok)
	_, ok = env.Target("")
	assert.False(t, ok)
}

func TestResultMerge(t *testing.T) {
	var r Result
	assert.True(t, r.Empty())
	var o Result
	o.AddForce("a", Vec2{X: 1})
	o.Logf("%s hums", Sage)
	o.Relate(Sage, Nyx, 0.1)
	r.AddForce("a", Vec2{Y: 2})
	r.Merge(o)
	assert.Equal(t, Vec2{X: 1, Y: 2}, r.Forces["a"])
	assert.Equal(t, []string{"Sage hums"}, r.Logs)
	assert.Len(t, r.Relations, 1)
	assert.False(t, r.Empty())
}
