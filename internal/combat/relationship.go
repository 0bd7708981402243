package combat

import (
	"fmt"
	"sort"
	"strings"
)

// Relationship scale. Unset pairs read as Acquaintance.
const (
	MortalEnemy  = -1.0
	Acquaintance = 0.1
	Friend       = 0.5
	Ally         = 0.7
	BestFriend   = 0.8

	// MinScore lets hatred deepen past MortalEnemy; every such score still
	// compares as <= MortalEnemy.
	MinScore = -2.0
)

// RelationEvent nudges the score between two strands by Modifier.
type RelationEvent struct {
	S1       Name    `json:"s1"`
	S2       Name    `json:"s2"`
	Modifier float64 `json:"modifier"`
}

type pairKey struct{ a, b Name }

func keyOf(a, b Name) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Relationships is the affinity matrix. Storage is canonicalized so that
// Get(a, b) == Get(b, a), and every score stays inside [MinScore, BestFriend].
type Relationships struct {
	scores map[pairKey]float64
}

func NewRelationships() *Relationships {
	return &Relationships{scores: map[pairKey]float64{}}
}

func (r *Relationships) Get(a, b Name) float64 {
	if r == nil {
		return Acquaintance
	}
	if v, ok := r.scores[keyOf(a, b)]; ok {
		return v
	}
	return Acquaintance
}

// Set stores a starting score. Behaviour code goes through Apply instead.
func (r *Relationships) Set(a, b Name, score float64) {
	if a == b {
		return
	}
	r.scores[keyOf(a, b)] = clampScore(score)
}

// Apply adds the event modifier to the current score.
func (r *Relationships) Apply(ev RelationEvent) {
	if ev.S1 == ev.S2 || ev.Modifier == 0 {
		return
	}
	k := keyOf(ev.S1, ev.S2)
	cur, ok := r.scores[k]
	if !ok {
		cur = Acquaintance
	}
	r.scores[k] = clampScore(cur + ev.Modifier)
}

func clampScore(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > BestFriend {
		return BestFriend
	}
	return v
}

type Pair struct {
	A     Name    `json:"a"`
	B     Name    `json:"b"`
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// Pairs lists the explicitly stored entries ordered by name.
func (r *Relationships) Pairs() []Pair {
	out := make([]Pair, 0, len(r.scores))
	for k, v := range r.scores {
		out = append(out, Pair{A: k.a, B: k.b, Score: v, Level: LevelOf(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

var levels = []struct {
	name  string
	score float64
}{
	{"mortal_enemy", MortalEnemy},
	{"acquaintance", Acquaintance},
	{"friend", Friend},
	{"ally", Ally},
	{"best_friend", BestFriend},
}

// LevelOf names the highest tier the score reaches.
func LevelOf(score float64) string {
	name := levels[0].name
	for _, l := range levels {
		if score >= l.score {
			name = l.name
		}
	}
	return name
}

func ParseLevel(s string) (float64, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	for _, l := range levels {
		if l.name == key || strings.ReplaceAll(l.name, "_", "") == key {
			return l.score, nil
		}
	}
	return 0, fmt.Errorf("unknown relationship level %q", s)
}
