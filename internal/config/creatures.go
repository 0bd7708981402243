package config

import (
	"fmt"

	"strandsim/internal/creature"
)

type CreaturesConfig struct {
	Creatures []CreatureDef `yaml:"creatures"`
}

type CreatureDef struct {
	Name         string       `yaml:"name"`
	Kind         string       `yaml:"kind"`
	Level        int          `yaml:"level"`
	MaxHealth    float64      `yaml:"max_health"`
	Health       float64      `yaml:"health"`
	MaxEvolution float64      `yaml:"max_evolution"`
	Evolution    float64      `yaml:"evolution"`
	Abilities    []AbilityDef `yaml:"abilities"`
}

type AbilityDef struct {
	Name       string  `yaml:"name"`
	CooldownMs float64 `yaml:"cooldown_ms"`
}

func (c *CreaturesConfig) Validate() error {
	for i, d := range c.Creatures {
		if d.Name == "" {
			return fmt.Errorf("creature %d: missing name", i)
		}
		if _, err := creature.ParseKind(d.Kind); err != nil {
			return fmt.Errorf("creature %s: %w", d.Name, err)
		}
		for _, a := range d.Abilities {
			if a.CooldownMs < 0 {
				return fmt.Errorf("creature %s: ability %s has negative cooldown", d.Name, a.Name)
			}
		}
	}
	return nil
}

// Build creates the creatures. Health defaults to full.
func (c *CreaturesConfig) Build() []*creature.Creature {
	if c == nil {
		return nil
	}
	out := make([]*creature.Creature, 0, len(c.Creatures))
	for _, d := range c.Creatures {
		kind, _ := creature.ParseKind(d.Kind)
		cr := &creature.Creature{
			Name:         d.Name,
			Kind:         kind,
			Level:        max(d.Level, 1),
			MaxHealth:    d.MaxHealth,
			Health:       d.Health,
			MaxEvolution: d.MaxEvolution,
			Evolution:    d.Evolution,
		}
		if cr.Health <= 0 {
			cr.Health = cr.MaxHealth
		}
		for _, a := range d.Abilities {
			cr.Abilities = append(cr.Abilities, &creature.Ability{Name: a.Name, CooldownDuration: a.CooldownMs})
		}
		out = append(out, cr)
	}
	return out
}
