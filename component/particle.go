package component

import "github.com/lixenwraith/gravity-sandbox/vmath"

// Particle is a short-lived jet or debris point, owned by the world particle list
type Particle struct {
	Pos vmath.Vec2
	Vel vmath.Vec2

	Color RGB

	Life        int // Remaining ticks
	InitialLife int

	GravityAffected bool // Pulled by black-hole-class bodies
}

// NewParticle creates a particle with full life
func NewParticle(pos, vel vmath.Vec2, color RGB, life int, gravity bool) Particle {
	return Particle{
		Pos:             pos,
		Vel:             vel,
		Color:           color,
		Life:            life,
		InitialLife:     life,
		GravityAffected: gravity,
	}
}

// Alive reports whether the particle has ticks left
func (p *Particle) Alive() bool { return p.Life > 0 }

// Fade returns remaining life ratio in [0,1] for alpha
func (p *Particle) Fade() float64 {
	if p.InitialLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.InitialLife)
}
