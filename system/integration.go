package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/physics"
)

// IntegrationSystem advances every non-static body against the effective source list
type IntegrationSystem struct {
	world *engine.World
}

func NewIntegrationSystem(world *engine.World) engine.System {
	return &IntegrationSystem{world: world}
}

func (s *IntegrationSystem) Priority() int {
	return parameter.PriorityIntegration
}

// Update integrates bodies sequentially; earlier bodies have already moved when later ones sum forces
func (s *IntegrationSystem) Update() {
	cfg := s.world.Config
	sources := s.world.Effective

	for _, b := range s.world.Bodies {
		if b.Static {
			continue
		}
		acc := physics.NetAcceleration(b, sources, cfg.Gravity, cfg.PlanetInteractions)
		physics.Integrate(b, acc)

		if b.Trail != nil {
			b.Trail.Push(b.Pos)
		}
	}
}
