package physics

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// OrbitalSpeed returns circular orbit speed v = sqrt(G*M/dist)
// Non-positive distance or radicand falls back to zero
func OrbitalSpeed(g, centralMass, dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	r := g * centralMass / dist
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return math.Sqrt(r)
}

// OrbitalInsert returns offset and velocity for a circular orbit at angle and dist around a center
// Velocity is perpendicular to the radius vector (counter-clockwise in world coordinates)
func OrbitalInsert(g, centralMass, angle, dist float64) (offset, vel vmath.Vec2) {
	offset = vmath.FromAngle(angle, dist)
	speed := OrbitalSpeed(g, centralMass, dist)
	vel = vmath.V(-math.Sin(angle)*speed, math.Cos(angle)*speed)
	return offset, vel
}
