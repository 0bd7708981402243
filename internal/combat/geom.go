package combat

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64    { return math.Hypot(a.X, a.Y) }
func (a Vec2) LenSq() float64  { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

// DistSq avoids the square root for nearest-neighbour comparisons.
func DistSq(a, b Vec2) float64 { return a.Sub(b).LenSq() }

// Heading returns the unit vector at angle rad.
func Heading(rad float64) Vec2 { return Vec2{math.Cos(rad), math.Sin(rad)} }

// Toward is the unit direction from a to b, zero when they coincide.
func Toward(a, b Vec2) Vec2 { return b.Sub(a).Norm() }
