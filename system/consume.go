package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/physics"
	"github.com/lixenwraith/gravity-sandbox/status"
)

// ConsumeSystem lets black-hole-class bodies absorb anything whose center falls inside their radius
// Absorbed bodies are marked on the pending batch, growth applies immediately
type ConsumeSystem struct {
	world *engine.World

	statConsumed *status.Counter
}

func NewConsumeSystem(world *engine.World) engine.System {
	return &ConsumeSystem{
		world:        world,
		statConsumed: world.Status.Counter("consume.total", "Bodies absorbed by black holes"),
	}
}

func (s *ConsumeSystem) Priority() int {
	return parameter.PriorityConsume
}

func (s *ConsumeSystem) Update() {
	bodies := s.world.Bodies
	for _, hole := range bodies {
		if !hole.Kind.IsBlackHoleClass() || s.world.IsMarked(hole.ID) {
			continue
		}

		for _, target := range bodies {
			if target == hole || target.Kind.IsBlackHoleClass() {
				continue
			}
			if s.world.IsMarked(target.ID) || !physics.Contains(hole, target.Pos) {
				continue
			}

			s.world.MarkRemoved(target.ID)
			hole.SetMass(hole.Mass + target.Mass*parameter.AccretionFactor)
			s.statConsumed.Inc()

			s.world.Emit(event.EventBodyConsumed, &event.ConsumePayload{
				Hole:     hole.ID,
				Consumed: target.ID,
				Kind:     target.Kind,
				Mass:     target.Mass,
				HoleMass: hole.Mass,
			})
		}
	}
}
