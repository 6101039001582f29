package physics

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// AccelerationFrom returns the pull of source on subject:
// a = G * m_source * (Δ/|Δ|) / max(|Δ|², MinDistanceSq)
// Coincident positions yield zero; self-pairs are the caller's concern
func AccelerationFrom(subject, source *component.Body, g float64) vmath.Vec2 {
	delta := source.Pos.Sub(subject.Pos)
	distSq := delta.LenSq()
	if distSq == 0 {
		return vmath.Zero
	}

	clamped := distSq
	if clamped < parameter.MinDistanceSq {
		clamped = parameter.MinDistanceSq
	}

	force := g * source.Mass / clamped
	return delta.Scale(force / math.Sqrt(distSq))
}

// Interacts reports whether subject is pulled by source
// Planet pairs are skipped when planet interactions are disabled
func Interacts(subject, source *component.Body, planetInteractions bool) bool {
	if subject == source {
		return false
	}
	if subject.ID != 0 && subject.ID == source.ID {
		return false
	}
	if !planetInteractions && subject.Kind == component.KindPlanet && source.Kind == component.KindPlanet {
		return false
	}
	return true
}

// NetAcceleration sums the pull of every interacting source on subject
func NetAcceleration(subject *component.Body, sources []*component.Body, g float64, planetInteractions bool) vmath.Vec2 {
	var acc vmath.Vec2
	for _, src := range sources {
		if !Interacts(subject, src, planetInteractions) {
			continue
		}
		acc = acc.Add(AccelerationFrom(subject, src, g))
	}
	return acc
}

// ParticleAcceleration returns the softened pull of source on a particle at pos:
// d² = |Δ|² + ParticleSofteningSq, a = G * m / d² * Δ/d
func ParticleAcceleration(pos vmath.Vec2, source *component.Body, g float64) vmath.Vec2 {
	delta := source.Pos.Sub(pos)
	distSq := delta.LenSq() + parameter.ParticleSofteningSq
	force := g * source.Mass / distSq
	return delta.Scale(force / math.Sqrt(distSq))
}
