package arena

import (
	"encoding/json"

	"strandsim/internal/combat"
	"strandsim/internal/creature"
)

type SimResult struct {
	Duration      float64        `json:"duration"`
	Ultimates     map[string]int `json:"ultimates"`
	Defeated      []combat.Name  `json:"defeated"`
	Survivors     []combat.Name  `json:"survivors"`
	Relationships []combat.Pair  `json:"relationships"`
	Creatures     []creature.HUD `json:"creatures,omitempty"`
	Events        []combat.Event `json:"events,omitempty"`
}

func (w *World) Result() SimResult {
	res := SimResult{
		Duration:      w.env.Time,
		Ultimates:     map[string]int{},
		Defeated:      append([]combat.Name{}, w.defeated...),
		Survivors:     []combat.Name{},
		Relationships: w.env.Relations.Pairs(),
	}
	for k, n := range w.casts {
		res.Ultimates[k.String()] = n
	}
	for _, s := range w.env.Strands {
		if !s.Defeated {
			res.Survivors = append(res.Survivors, s.Name)
		}
	}
	for _, c := range w.Creatures {
		res.Creatures = append(res.Creatures, c.HUD(w.env.Time))
	}
	if w.opts.Record {
		res.Events = w.events
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
