package combat

import "strandsim/internal/util"

// Env is the per-tick context handed to every behaviour call. Time is
// sampled once per tick so all timers agree within that tick.
type Env struct {
	Time      float64
	Delta     float64
	Rng       util.Roller
	Strands   []*Strand
	Relations *Relationships
	Arena     Vec2 // width, height
}

func (e *Env) ByID(id string) *Strand {
	if id == "" {
		return nil
	}
	for _, s := range e.Strands {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Target resolves a remembered id to a strand that can still be acted on.
func (e *Env) Target(id string) (*Strand, bool) {
	s := e.ByID(id)
	if !s.Active() {
		return nil, false
	}
	return s, true
}

// Others returns the active strands other than self.
func Others(self *Strand, all []*Strand) []*Strand {
	var out []*Strand
	for _, s := range all {
		if s == self || !s.Active() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Partition splits the other active strands into allies (>= Friend) and
// enemies (<= Acquaintance) as seen by self. Strands in between are neither.
func Partition(self *Strand, all []*Strand, rel *Relationships) (allies, enemies []*Strand) {
	for _, s := range Others(self, all) {
		score := rel.Get(self.Name, s.Name)
		switch {
		case score >= Friend:
			allies = append(allies, s)
		case score <= Acquaintance:
			enemies = append(enemies, s)
		}
	}
	return allies, enemies
}

// Nearest returns the first strand at minimal squared distance from p.
func Nearest(p Vec2, cands []*Strand) (*Strand, float64) {
	var best *Strand
	bestD := 0.0
	for _, s := range cands {
		d := DistSq(p, s.Pos)
		if best == nil || d < bestD {
			best, bestD = s, d
		}
	}
	return best, bestD
}

// Within keeps the strands whose distance from p is at most r.
func Within(p Vec2, cands []*Strand, r float64) []*Strand {
	var out []*Strand
	r2 := r * r
	for _, s := range cands {
		if DistSq(p, s.Pos) <= r2 {
			out = append(out, s)
		}
	}
	return out
}
