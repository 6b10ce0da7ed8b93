// Package geom provides the small amount of 2D vector math the engine needs.
package geom

import "math"

// Vec2 is a point or displacement in continuous world space.
// X grows east, Y grows south (screen convention).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of v in radians, in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Perp returns v rotated by +90°.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// OnlyX keeps the horizontal component.
func (v Vec2) OnlyX() Vec2 {
	return Vec2{X: v.X}
}

// OnlyY keeps the vertical component.
func (v Vec2) OnlyY() Vec2 {
	return Vec2{Y: v.Y}
}

// NormalizeAngle wraps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
