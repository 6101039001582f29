// Package game owns the simulation loop step: system scheduling, command application and event dispatch
package game

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/scenario"
	"github.com/lixenwraith/gravity-sandbox/system"
)

// Simulation drives one World through priority-ordered systems
// Not safe for concurrent use; the main loop is the only caller
type Simulation struct {
	World  *engine.World
	Router *event.Router

	systems []engine.System
	audio   engine.AudioPlayer
}

// New creates a simulation with the standard system set and the solar system loaded
// player may be nil when audio is unavailable
func New(cfg *engine.Config, rng *rand.Rand, player engine.AudioPlayer) *Simulation {
	w := engine.NewWorld(cfg, rng)
	s := &Simulation{
		World:  w,
		Router: event.NewRouter(w.Events),
		audio:  player,
	}

	s.AddSystem(system.NewInteractionSystem(w))
	s.AddSystem(system.NewConsumeSystem(w))
	s.AddSystem(system.NewCollisionSystem(w))
	s.AddSystem(system.NewCommitSystem(w))
	s.AddSystem(system.NewIntegrationSystem(w))
	s.AddSystem(system.NewEmitterSystem(w))
	s.AddSystem(system.NewParticleSystem(w))
	s.AddSystem(system.NewEffectSystem(w))
	s.AddSystem(system.NewCleanupSystem(w))
	s.AddSystem(system.NewStatsSystem(w))
	s.AddSystem(system.NewAudioSystem(w, player))

	s.loadSolarSystem()
	return s
}

// AddSystem inserts a system keeping priority order, stable for equal priorities
// Systems that also handle events are subscribed to the router
func (s *Simulation) AddSystem(sys engine.System) {
	if h, ok := sys.(event.Handler); ok {
		s.RegisterHandler(h)
	}
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// RegisterHandler subscribes h to the event router
func (s *Simulation) RegisterHandler(h event.Handler) {
	s.Router.Register(h)
}

// Systems returns the scheduled systems in execution order
func (s *Simulation) Systems() []engine.System {
	return s.systems
}

// Step advances one frame with the sampled pointer
// While paused only pause-exempt systems run
func (s *Simulation) Step(pointer engine.Pointer) {
	w := s.World
	w.Frame++
	w.Pointer = pointer

	paused := w.Config.Paused
	for _, sys := range s.systems {
		if paused && !engine.RunsWhilePaused(sys) {
			continue
		}
		sys.Update()
	}

	s.Router.DispatchAll()
}

// Apply executes a user command between frames, returns false when the user asked to quit
func (s *Simulation) Apply(cmd engine.Command) bool {
	w := s.World
	cfg := w.Config

	switch cmd.Type {
	case engine.CommandQuit:
		return false

	case engine.CommandTogglePause:
		cfg.Paused = !cfg.Paused

	case engine.CommandTogglePlanetInteractions:
		cfg.PlanetInteractions = !cfg.PlanetInteractions

	case engine.CommandReset:
		cfg.ResetGravity()
		s.loadSolarSystem()
		w.Emit(event.EventSceneReset, &event.ResetPayload{Bodies: w.Len(), GravityReset: true})

	case engine.CommandReseed:
		s.loadSolarSystem()
		w.Emit(event.EventSceneReset, &event.ResetPayload{Bodies: w.Len()})

	case engine.CommandGravityUp:
		cfg.IncreaseGravity()
		w.Emit(event.EventGravityChanged, &event.GravityPayload{G: cfg.Gravity})

	case engine.CommandGravityDown:
		cfg.DecreaseGravity()
		w.Emit(event.EventGravityChanged, &event.GravityPayload{G: cfg.Gravity})

	case engine.CommandToggleMute:
		if s.audio != nil {
			s.audio.ToggleMute()
		}

	default:
		if cmd.Type.IsSpawn() {
			s.spawn(cmd)
		}
	}
	return true
}

// Muted reports the audio mute state, true when no player is attached
func (s *Simulation) Muted() bool {
	if s.audio == nil {
		return true
	}
	return s.audio.IsMuted()
}

// spawn adds user bodies at the cursor unless the registry is full
func (s *Simulation) spawn(cmd engine.Command) {
	w := s.World
	if w.AtCap() {
		return
	}

	var bodies []*component.Body
	switch cmd.Type {
	case engine.CommandSpawnStar:
		bodies = append(bodies, scenario.Star(w.Rand, cmd.Pos))
	case engine.CommandSpawnBlackHole:
		bodies = append(bodies, scenario.BlackHole(w.Rand, cmd.Pos))
	case engine.CommandSpawnPulsar:
		bodies = append(bodies, scenario.Pulsar(w.Rand, cmd.Pos))
	case engine.CommandSpawnQuasar:
		bodies = append(bodies, scenario.Quasar(w.Rand, cmd.Pos))
	case engine.CommandSpawnGalaxy:
		bodies = scenario.DefaultGalaxy(w.Config, w.Rand, cmd.Pos)
	}
	if len(bodies) == 0 {
		return
	}

	w.AddAll(bodies)
	w.Emit(event.EventBodySpawned, &event.SpawnPayload{
		Kind:  bodies[0].Kind,
		Pos:   cmd.Pos,
		Count: len(bodies),
	})
}

// loadSolarSystem replaces the registry and clears particles and effects
func (s *Simulation) loadSolarSystem() {
	w := s.World
	w.Reset(scenario.SolarSystem(w.Config, w.Rand))
}
