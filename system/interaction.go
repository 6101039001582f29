package system

import (
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// InteractionSystem rebuilds the effective gravity source list from the registry and pointer
type InteractionSystem struct {
	world *engine.World

	attractor *component.Body
	repulsor  *component.Body
}

func NewInteractionSystem(world *engine.World) engine.System {
	return &InteractionSystem{
		world:     world,
		attractor: component.NewAttractor(world.Pointer.Pos, parameter.AttractorMass),
		repulsor:  component.NewAttractor(world.Pointer.Pos, parameter.RepulsorMass),
	}
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

// Update appends pointer pseudo bodies to a copy of the registry
// Pseudo bodies carry ID 0 and are never registered
func (s *InteractionSystem) Update() {
	ptr := s.world.Pointer
	prev := s.world.Effective

	eff := append(prev[:0], s.world.Bodies...)

	tool := parameter.ToolNone
	if ptr.Attract {
		s.attractor.Pos = ptr.Pos
		eff = append(eff, s.attractor)
		tool = parameter.ToolAttract
	}
	if ptr.Repel {
		s.repulsor.Pos = ptr.Pos
		eff = append(eff, s.repulsor)
		tool = parameter.ToolRepel
	}

	// Clear stale tail so dropped bodies can be collected
	for i := len(eff); i < len(prev); i++ {
		prev[i] = nil
	}
	s.world.Effective = eff
	s.world.Tool = tool
}
