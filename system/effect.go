package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// EffectSystem ages visual effects
type EffectSystem struct {
	world *engine.World
}

func NewEffectSystem(world *engine.World) engine.System {
	return &EffectSystem{world: world}
}

func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

func (s *EffectSystem) Update() {
	effects := s.world.Effects
	for i := range effects {
		if effects[i].Alive() {
			effects[i].Life--
		}
	}
}
