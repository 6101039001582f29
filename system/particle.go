package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/physics"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// ParticleSystem moves particles and ages them; removal happens in CleanupSystem
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) engine.System {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

// Update pulls gravity-affected particles toward black-hole-class sources only
func (s *ParticleSystem) Update() {
	g := s.world.Config.Gravity
	particles := s.world.Particles

	for i := range particles {
		p := &particles[i]
		if !p.Alive() {
			continue
		}

		var acc vmath.Vec2
		if p.GravityAffected {
			for _, src := range s.world.Effective {
				if src.Kind.IsBlackHoleClass() {
					acc = acc.Add(physics.ParticleAcceleration(p.Pos, src, g))
				}
			}
		}

		physics.IntegrateParticle(p, acc)
		p.Life--
	}
}
