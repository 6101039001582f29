package system

import (
	"log"

	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/status"
)

// CleanupSystem drops expired particles and effects and enforces the population cap
// Runs while paused so scene spawns never leave the registry above the cap
type CleanupSystem struct {
	world *engine.World

	statEvicted *status.Counter
}

func NewCleanupSystem(world *engine.World) engine.System {
	return &CleanupSystem{
		world:       world,
		statEvicted: world.Status.Counter("evicted.total", "Bodies evicted by the population cap"),
	}
}

func (s *CleanupSystem) Priority() int {
	return parameter.PriorityCleanup
}

func (s *CleanupSystem) RunsWhilePaused() bool {
	return true
}

func (s *CleanupSystem) Update() {
	w := s.world

	// In-place filter, order preserved
	live := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	w.Particles = live

	effects := w.Effects[:0]
	for _, e := range w.Effects {
		if e.Alive() {
			effects = append(effects, e)
		}
	}
	w.Effects = effects

	if n := w.EnforceCap(); n > 0 {
		s.statEvicted.Add(int64(n))
		log.Printf("population cap: evicted %d lightest bodies", n)
		w.Emit(event.EventBodiesEvicted, &event.EvictPayload{Count: n})
	}
}
