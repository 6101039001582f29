package system

import (
	"log"

	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/status"
)

// StatsSystem publishes world gauges to the status registry and counts user events
// Read by the HUD and the metrics exporter
type StatsSystem struct {
	world *engine.World

	statBodies    *status.Gauge
	statParticles *status.Gauge
	statEffects   *status.Gauge
	statFrame     *status.Gauge
	statGravity   *status.Gauge
	statSpawned   *status.Counter
	statResets    *status.Counter
	statDropped   *status.Gauge
	statPlanets   *status.Flag
	statPaused    *status.Flag
	statTool      *status.Label
}

func NewStatsSystem(world *engine.World) engine.System {
	reg := world.Status
	return &StatsSystem{
		world:         world,
		statBodies:    reg.Gauge("bodies.count", "Bodies in the registry"),
		statParticles: reg.Gauge("particles.count", "Live particles"),
		statEffects:   reg.Gauge("effects.count", "Live visual effects"),
		statFrame:     reg.Gauge("frame", "Simulation frame number"),
		statGravity:   reg.Gauge("gravity", "Gravitational constant"),
		statSpawned:   reg.Counter("spawn.total", "Bodies spawned by the user"),
		statResets:    reg.Counter("reset.total", "Scene resets"),
		statDropped:   reg.Gauge("events.dropped", "Events lost to the per-tick queue bound"),
		statPlanets:   reg.Flag("planets.interact", "Planet-planet gravity enabled"),
		statPaused:    reg.Flag("paused", "Simulation paused"),
		statTool:      reg.Label("tool", "Active pointer tool"),
	}
}

func (s *StatsSystem) Priority() int {
	return parameter.PriorityStats
}

func (s *StatsSystem) RunsWhilePaused() bool {
	return true
}

func (s *StatsSystem) Update() {
	w := s.world

	s.statBodies.SetInt(len(w.Bodies))
	s.statParticles.SetInt(len(w.Particles))
	s.statEffects.SetInt(len(w.Effects))
	s.statFrame.Set(float64(w.Frame))
	s.statGravity.Set(w.Config.Gravity)
	s.statDropped.SetInt(w.Events.Dropped())

	s.statPlanets.Set(w.Config.PlanetInteractions)
	s.statPaused.Set(w.Config.Paused)
	s.statTool.Set(w.Tool)
}

func (s *StatsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBodySpawned,
		event.EventSceneReset,
		event.EventGravityChanged,
	}
}

func (s *StatsSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBodySpawned:
		if p, ok := ev.Payload.(*event.SpawnPayload); ok {
			s.statSpawned.Add(int64(p.Count))
		}
	case event.EventSceneReset:
		s.statResets.Inc()
		if p, ok := ev.Payload.(*event.ResetPayload); ok {
			log.Printf("scene reset: bodies=%d gravity_reset=%v", p.Bodies, p.GravityReset)
		}
	case event.EventGravityChanged:
		if p, ok := ev.Payload.(*event.GravityPayload); ok {
			log.Printf("gravity: G=%.3f", p.G)
		}
	}
}
