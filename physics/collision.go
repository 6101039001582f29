package physics

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// Overlaps reports whether two bodies' discs intersect (center distance < r1 + r2)
func Overlaps(a, b *component.Body) bool {
	return vmath.Dist(a.Pos, b.Pos) < a.Radius+b.Radius
}

// Contains reports whether p lies strictly inside the body's radius
func Contains(b *component.Body, p vmath.Vec2) bool {
	return vmath.Dist(b.Pos, p) < b.Radius
}

// MergeSite returns the mass-weighted centroid of two bodies
func MergeSite(a, b *component.Body) vmath.Vec2 {
	return vmath.WeightedAverage(a.Pos, a.Mass, b.Pos, b.Mass)
}

// MergeVelocity returns the momentum-conserving velocity of the merged body
func MergeVelocity(a, b *component.Body) vmath.Vec2 {
	return vmath.WeightedAverage(a.Vel, a.Mass, b.Vel, b.Mass)
}

// ShockwaveImpulse returns the radial push from an explosion at site:
// |dv| = ShockwaveStrength / (d² + 1), directed away from the site
func ShockwaveImpulse(site, pos vmath.Vec2) vmath.Vec2 {
	delta := pos.Sub(site)
	distSq := delta.LenSq() + parameter.ShockwaveSofteningSq
	force := parameter.ShockwaveStrength / distSq
	return delta.Scale(force / math.Sqrt(distSq))
}
