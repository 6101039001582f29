package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

func newSim() *Simulation {
	return New(engine.DefaultConfig(), rand.New(rand.NewSource(11)), nil)
}

type mutePlayer struct{ muted bool }

func (p *mutePlayer) Play(engine.SoundType) bool { return !p.muted }
func (p *mutePlayer) ToggleMute() bool           { p.muted = !p.muted; return p.muted }
func (p *mutePlayer) IsMuted() bool              { return p.muted }

func TestNewLoadsSolarSystem(t *testing.T) {
	s := newSim()
	if s.World.Len() != 9 {
		t.Fatalf("Expected 9 bodies, got %d", s.World.Len())
	}
	if s.World.Config.PlanetInteractions {
		t.Error("Expected planet interactions disabled for the solar system")
	}
}

func TestSystemsOrderedByPriority(t *testing.T) {
	s := newSim()
	systems := s.Systems()
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("System %d priority %d after %d", i, systems[i].Priority(), systems[i-1].Priority())
		}
	}
}

func TestStepAdvancesPlanets(t *testing.T) {
	s := newSim()
	sun := s.World.Bodies[0]
	earth := s.World.Bodies[3]
	start := earth.Pos

	for range 10 {
		s.Step(engine.Pointer{})
	}

	if earth.Pos == start {
		t.Error("Expected Earth to move")
	}
	if sun.Pos != vmath.V(700, 450) {
		t.Errorf("Expected sun fixed, got %v", sun.Pos)
	}
	if s.World.Frame != 10 {
		t.Errorf("Expected frame 10, got %d", s.World.Frame)
	}
	if v := s.World.Status.Gauge("bodies.count", "").Value(); v != 9 {
		t.Errorf("Expected bodies.count 9, got %v", v)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	s := newSim()
	s.Apply(engine.Command{Type: engine.CommandTogglePause})
	earth := s.World.Bodies[3]
	start := earth.Pos

	s.Step(engine.Pointer{Attract: true})

	if earth.Pos != start {
		t.Error("Expected no movement while paused")
	}
	if !s.World.Status.Flag("paused", "").Value() {
		t.Error("Expected stats to run while paused")
	}

	s.Apply(engine.Command{Type: engine.CommandTogglePause})
	s.Step(engine.Pointer{})
	if earth.Pos == start {
		t.Error("Expected movement after unpause")
	}
}

func TestGravityCommands(t *testing.T) {
	s := newSim()
	cfg := s.World.Config

	s.Apply(engine.Command{Type: engine.CommandGravityUp})
	if cfg.Gravity != parameter.DefaultGravity*parameter.GravityStep {
		t.Errorf("Expected %v, got %v", parameter.DefaultGravity*parameter.GravityStep, cfg.Gravity)
	}

	// Reseed keeps G
	s.Apply(engine.Command{Type: engine.CommandReseed})
	if cfg.Gravity == parameter.DefaultGravity {
		t.Error("Expected reseed to keep adjusted gravity")
	}

	s.Apply(engine.Command{Type: engine.CommandReset})
	if cfg.Gravity != parameter.DefaultGravity {
		t.Errorf("Expected reset gravity %v, got %v", parameter.DefaultGravity, cfg.Gravity)
	}
}

func TestResetRestoresDefaultGravity(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Gravity = 3.0
	s := New(cfg, rand.New(rand.NewSource(3)), nil)

	s.Apply(engine.Command{Type: engine.CommandReset})
	if cfg.Gravity != 1.2 {
		t.Errorf("Expected reset gravity 1.2, got %v", cfg.Gravity)
	}
}

func TestEventSystemsSubscribed(t *testing.T) {
	s := newSim()

	// Stats and audio both count spawns
	if n := s.Router.HandlerCount(event.EventBodySpawned); n != 2 {
		t.Errorf("Expected 2 spawn handlers, got %d", n)
	}
	if n := s.Router.HandlerCount(event.EventSupernova); n != 1 {
		t.Errorf("Expected 1 supernova handler, got %d", n)
	}
	if n := s.Router.HandlerCount(event.EventSceneReset); n != 1 {
		t.Errorf("Expected 1 reset handler, got %d", n)
	}

	s.Apply(engine.Command{Type: engine.CommandSpawnStar, Pos: vmath.V(100, 100)})
	s.Step(engine.Pointer{})
	if v := s.World.Status.Counter("spawn.total", "").Value(); v != 1 {
		t.Errorf("Expected spawn.total 1, got %d", v)
	}
	if s.World.Events.Len() != 0 {
		t.Errorf("Expected queue drained after step, got %d", s.World.Events.Len())
	}
}

func TestResetClearsTransients(t *testing.T) {
	s := newSim()
	w := s.World
	w.AddParticle(component.NewParticle(vmath.Zero, vmath.Zero, component.RGBWhite, 10, false))
	w.AddEffect(component.NewFlash(vmath.Zero, 300, 40))
	s.Apply(engine.Command{Type: engine.CommandSpawnBlackHole, Pos: vmath.V(100, 100)})

	s.Apply(engine.Command{Type: engine.CommandReset})

	if w.Len() != 9 || len(w.Particles) != 0 || len(w.Effects) != 0 {
		t.Errorf("Expected clean solar system, got %d bodies %d particles %d effects",
			w.Len(), len(w.Particles), len(w.Effects))
	}
}

func TestSpawnCommands(t *testing.T) {
	tests := []struct {
		cmd  engine.CommandType
		kind component.Kind
	}{
		{engine.CommandSpawnStar, component.KindStar},
		{engine.CommandSpawnBlackHole, component.KindBlackHole},
		{engine.CommandSpawnPulsar, component.KindPulsar},
		{engine.CommandSpawnQuasar, component.KindQuasar},
	}

	for _, tt := range tests {
		s := newSim()
		pos := vmath.V(123, 456)
		s.Apply(engine.Command{Type: tt.cmd, Pos: pos})

		if s.World.Len() != 10 {
			t.Fatalf("%s: expected 10 bodies, got %d", tt.cmd, s.World.Len())
		}
		b := s.World.Bodies[9]
		if b.Kind != tt.kind || b.Pos != pos {
			t.Errorf("%s: expected %s at %v, got %s at %v", tt.cmd, tt.kind, pos, b.Kind, b.Pos)
		}
	}
}

func TestGalaxySpawnEnablesPlanetInteractions(t *testing.T) {
	s := newSim()
	s.Apply(engine.Command{Type: engine.CommandSpawnGalaxy, Pos: vmath.V(700, 450)})

	if !s.World.Config.PlanetInteractions {
		t.Error("Expected planet interactions enabled")
	}
	added := s.World.Len() - 9
	if added < 9 || added > 18 {
		t.Errorf("Expected 9..18 galaxy bodies, got %d", added)
	}

	s.Step(engine.Pointer{})
	if v := s.World.Status.Counter("spawn.total", "").Value(); v != int64(added) {
		t.Errorf("Expected spawn.total %d, got %d", added, v)
	}
}

func TestSpawnRefusedAtCap(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxBodies = 9
	s := New(cfg, rand.New(rand.NewSource(1)), nil)

	s.Apply(engine.Command{Type: engine.CommandSpawnStar, Pos: vmath.V(1, 1)})
	if s.World.Len() != 9 {
		t.Errorf("Expected spawn refused at cap, got %d bodies", s.World.Len())
	}
}

func TestCapEnforcedBeforeRender(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxBodies = 12
	s := New(cfg, rand.New(rand.NewSource(5)), nil)
	s.Apply(engine.Command{Type: engine.CommandTogglePause})
	s.Apply(engine.Command{Type: engine.CommandSpawnGalaxy, Pos: vmath.V(700, 450)})

	s.Step(engine.Pointer{})

	if s.World.Len() > cfg.MaxBodies {
		t.Errorf("Expected at most %d bodies, got %d", cfg.MaxBodies, s.World.Len())
	}
	// Sun outweighs every galaxy body
	if s.World.Bodies[len(s.World.Bodies)-1].Name != parameter.SunName {
		t.Errorf("Expected sun as heaviest survivor, got %q", s.World.Bodies[len(s.World.Bodies)-1].Name)
	}
}

func TestToggleCommands(t *testing.T) {
	player := &mutePlayer{}
	s := New(engine.DefaultConfig(), rand.New(rand.NewSource(1)), player)

	s.Apply(engine.Command{Type: engine.CommandTogglePlanetInteractions})
	if !s.World.Config.PlanetInteractions {
		t.Error("Expected planet interactions toggled on")
	}

	s.Apply(engine.Command{Type: engine.CommandToggleMute})
	if !s.Muted() {
		t.Error("Expected muted")
	}

	if s.Apply(engine.Command{Type: engine.CommandQuit}) {
		t.Error("Expected quit to stop the loop")
	}
	if !newSim().Muted() {
		t.Error("Expected muted without a player")
	}
}
