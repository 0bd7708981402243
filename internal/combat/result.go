package combat

import "fmt"

// MoodChange asks the host to set a strand's mood until a timestamp.
type MoodChange struct {
	TargetID string
	Mood     Mood
	Until    float64
}

// Result is what a behaviour call hands back to the host. Behaviour code
// never writes to other strands or to the relationship matrix directly.
type Result struct {
	Effects   []Effect
	Logs      []string
	Relations []RelationEvent
	Moods     []MoodChange
	Forces    map[string]Vec2
}

func (r *Result) Emit(e Effect) { r.Effects = append(r.Effects, e) }

func (r *Result) Logf(format string, args ...any) {
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}

func (r *Result) Relate(a, b Name, modifier float64) {
	r.Relations = append(r.Relations, RelationEvent{S1: a, S2: b, Modifier: modifier})
}

// AddForce superimposes f on any force already requested for id.
func (r *Result) AddForce(id string, f Vec2) {
	if r.Forces == nil {
		r.Forces = map[string]Vec2{}
	}
	r.Forces[id] = r.Forces[id].Add(f)
}

func (r *Result) Merge(o Result) {
	r.Effects = append(r.Effects, o.Effects...)
	r.Logs = append(r.Logs, o.Logs...)
	r.Relations = append(r.Relations, o.Relations...)
	r.Moods = append(r.Moods, o.Moods...)
	for id, f := range o.Forces {
		r.AddForce(id, f)
	}
}

func (r Result) Empty() bool {
	return len(r.Effects) == 0 && len(r.Logs) == 0 && len(r.Relations) == 0 &&
		len(r.Moods) == 0 && len(r.Forces) == 0
}
