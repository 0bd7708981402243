package config

import (
	"fmt"

	"strandsim/internal/combat"
)

// RelationshipsConfig seeds the affinity matrix. Each pair gives either a
// level name or an explicit score; score wins when both are set.
type RelationshipsConfig struct {
	Pairs []PairDef `yaml:"pairs"`
}

type PairDef struct {
	A     string   `yaml:"a"`
	B     string   `yaml:"b"`
	Level string   `yaml:"level"`
	Score *float64 `yaml:"score"`
}

func (p PairDef) resolve() (combat.Name, combat.Name, float64, error) {
	a, ok := combat.ParseName(p.A)
	if !ok {
		return "", "", 0, fmt.Errorf("unknown name %q", p.A)
	}
	b, ok := combat.ParseName(p.B)
	if !ok {
		return "", "", 0, fmt.Errorf("unknown name %q", p.B)
	}
	if a == b {
		return "", "", 0, fmt.Errorf("%s paired with itself", a)
	}
	if p.Score != nil {
		return a, b, *p.Score, nil
	}
	score, err := combat.ParseLevel(p.Level)
	if err != nil {
		return "", "", 0, fmt.Errorf("%s/%s: %w", a, b, err)
	}
	return a, b, score, nil
}

func (c *RelationshipsConfig) Validate() error {
	for i, p := range c.Pairs {
		if _, _, _, err := p.resolve(); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
	}
	return nil
}

// Build returns a fresh matrix. Scores are clamped by the matrix itself.
func (c *RelationshipsConfig) Build() *combat.Relationships {
	rel := combat.NewRelationships()
	if c == nil {
		return rel
	}
	for _, p := range c.Pairs {
		a, b, score, err := p.resolve()
		if err != nil {
			continue
		}
		rel.Set(a, b, score)
	}
	return rel
}
