// Package vmath provides float64 2D vector math for the simulation
package vmath

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// ClampLen limits vector to maxLen while preserving direction
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// DistSq returns squared distance between two points
func DistSq(a, b Vec2) float64 { return b.Sub(a).LenSq() }

// Dist returns distance between two points
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// FromAngle returns the vector of length mag pointing at angle radians
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// WeightedAverage returns (a*wa + b*wb) / (wa + wb), zero when weights cancel
func WeightedAverage(a Vec2, wa float64, b Vec2, wb float64) Vec2 {
	total := wa + wb
	if total == 0 {
		return Zero
	}
	return a.Scale(wa).Add(b.Scale(wb)).Scale(1 / total)
}

// WrapAngle maps an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WrapUnit maps a value into [0, 1), used for hues
func WrapUnit(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
