// Package creature models the companion creatures shown on the HUD. They do
// not fight; the arena only advances their ability timers.
package creature

import (
	"fmt"
	"math"
)

type Kind string

const (
	Verdant Kind = "verdant"
	Hollow  Kind = "hollow"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Verdant, Hollow:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown creature kind %q", s)
}

// GaugeName is the label of the kind's pressure gauge.
func (k Kind) GaugeName() string {
	if k == Hollow {
		return "hunger"
	}
	return "growth"
}

type Ability struct {
	Name             string
	CooldownDuration float64 // ms
	LastUsed         float64
	used             bool
}

func (a *Ability) Ready(now float64) bool { return a.Remaining(now) == 0 }

// Remaining is the cooldown left in ms, 0 when ready.
func (a *Ability) Remaining(now float64) float64 {
	if !a.used {
		return 0
	}
	return math.Max(0, a.LastUsed+a.CooldownDuration-now)
}

// CooldownFraction runs from 1 right after use down to 0 when ready.
func (a *Ability) CooldownFraction(now float64) float64 {
	if a.CooldownDuration <= 0 {
		return 0
	}
	return a.Remaining(now) / a.CooldownDuration
}

func (a *Ability) Use(now float64) bool {
	if !a.Ready(now) {
		return false
	}
	a.LastUsed, a.used = now, true
	return true
}

type Creature struct {
	Name         string
	Kind         Kind
	Level        int
	Health       float64
	MaxHealth    float64
	Evolution    float64
	MaxEvolution float64
	Pressure     float64 // 0..1
	Abilities    []*Ability
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, v/max))
}

func (c *Creature) HealthRatio() float64    { return ratio(c.Health, c.MaxHealth) }
func (c *Creature) EvolutionRatio() float64 { return ratio(c.Evolution, c.MaxEvolution) }

const (
	evolvePerUse   = 1.0
	pressurePerUse = 0.05
)

// Auto fires every ready ability and returns the names used. Each use feeds
// evolution and the pressure gauge; a full evolution bar levels the creature up.
func (c *Creature) Auto(now float64) []string {
	var used []string
	for _, a := range c.Abilities {
		if !a.Use(now) {
			continue
		}
		used = append(used, a.Name)
		c.Pressure = math.Min(1, c.Pressure+pressurePerUse)
		c.Evolution += evolvePerUse
		if c.MaxEvolution > 0 && c.Evolution >= c.MaxEvolution {
			c.Evolution -= c.MaxEvolution
			c.Level++
		}
	}
	return used
}

type AbilityHUD struct {
	Name      string  `json:"name"`
	Ready     bool    `json:"ready"`
	Remaining float64 `json:"remainingMs"`
	Fraction  float64 `json:"cooldownFraction"`
}

type HUD struct {
	Name      string       `json:"name"`
	Kind      Kind         `json:"kind"`
	Level     int          `json:"level"`
	Health    float64      `json:"health"`
	Evolution float64      `json:"evolution"`
	Gauge     string       `json:"gauge"`
	Pressure  float64      `json:"pressure"`
	Abilities []AbilityHUD `json:"abilities"`
}

func (c *Creature) HUD(now float64) HUD {
	h := HUD{
		Name:      c.Name,
		Kind:      c.Kind,
		Level:     c.Level,
		Health:    c.HealthRatio(),
		Evolution: c.EvolutionRatio(),
		Gauge:     c.Kind.GaugeName(),
		Pressure:  c.Pressure,
	}
	for _, a := range c.Abilities {
		h.Abilities = append(h.Abilities, AbilityHUD{
			Name:      a.Name,
			Ready:     a.Ready(now),
			Remaining: a.Remaining(now),
			Fraction:  a.CooldownFraction(now),
		})
	}
	return h
}
