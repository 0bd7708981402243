package util

import "math/rand"

// Roller is the random source behaviour code draws from. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Fixed always rolls the same value. Intn returns 0.
type Fixed float64

func (f Fixed) Float64() float64 { return float64(f) }
func (f Fixed) Intn(n int) int   { return 0 }

// Sequence replays Values in order and then repeats the last one.
type Sequence struct {
	Values []float64
	pos    int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos]
	if s.pos < len(s.Values)-1 {
		s.pos++
	}
	return v
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
