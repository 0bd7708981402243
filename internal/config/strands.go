package config

import (
	"fmt"

	"strandsim/internal/combat"
)

// StrandsConfig is the roster file. Entries left out of the file are not spawned.
type StrandsConfig struct {
	Strands []StrandDef `yaml:"strands"`
}

type StrandDef struct {
	Name      string  `yaml:"name"`
	MaxHealth float64 `yaml:"max_health"`
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	Color     string  `yaml:"color"`
	Glow      string  `yaml:"glow"`
	MaxCharge float64 `yaml:"max_charge"`
	Spawn     Vec2Def `yaml:"spawn"`
	Note      string  `yaml:"note"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Def) Vec() combat.Vec2 { return combat.Vec2{X: v.X, Y: v.Y} }

func (c *StrandsConfig) Validate() error {
	if len(c.Strands) == 0 {
		return fmt.Errorf("roster is empty")
	}
	seen := map[combat.Name]bool{}
	for i, d := range c.Strands {
		n, ok := combat.ParseName(d.Name)
		if !ok {
			return fmt.Errorf("strand %d: unknown name %q", i, d.Name)
		}
		if seen[n] {
			return fmt.Errorf("strand %d: %s listed twice", i, n)
		}
		seen[n] = true
		if d.MaxHealth < 0 || d.Speed < 0 || d.Radius < 0 || d.MaxCharge < 0 {
			return fmt.Errorf("strand %s: negative stat", n)
		}
	}
	return nil
}

// Build turns the roster into live strands. Zero stats take the strand defaults.
func (c *StrandsConfig) Build() []*combat.Strand {
	out := make([]*combat.Strand, 0, len(c.Strands))
	for i, d := range c.Strands {
		n, _ := combat.ParseName(d.Name)
		hp := d.MaxHealth
		if hp <= 0 {
			hp = 100
		}
		s := combat.NewStrand(fmt.Sprintf("%s-%d", n, i), n, hp)
		if d.Speed > 0 {
			s.Speed = d.Speed
		}
		if d.Radius > 0 {
			s.Radius = d.Radius
		}
		if d.MaxCharge > 0 {
			s.MaxUltimateCharge = d.MaxCharge
		}
		s.Color = d.Color
		s.GlowColor = d.Glow
		s.Pos = d.Spawn.Vec()
		out = append(out, s)
	}
	return out
}
