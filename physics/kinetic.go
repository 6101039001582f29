package physics

import (
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// Integrate performs semi-implicit Euler with unit timestep: v += a; p += v
// Velocity must be updated before position
func Integrate(b *component.Body, acc vmath.Vec2) {
	b.Vel = b.Vel.Add(acc)
	b.Pos = b.Pos.Add(b.Vel)
}

// IntegrateParticle applies the same step to a particle
func IntegrateParticle(p *component.Particle, acc vmath.Vec2) {
	p.Vel = p.Vel.Add(acc)
	p.Pos = p.Pos.Add(p.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *component.Body, dv vmath.Vec2) {
	b.Vel = b.Vel.Add(dv)
}
