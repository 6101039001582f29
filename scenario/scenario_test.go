package scenario

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

func TestSolarSystemLayout(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.PlanetInteractions = true
	bodies := SolarSystem(cfg, rand.New(rand.NewSource(1)))

	if len(bodies) != 9 {
		t.Fatalf("Expected 9 bodies, got %d", len(bodies))
	}
	if cfg.PlanetInteractions {
		t.Error("Expected planet interactions disabled")
	}

	sun := bodies[0]
	if !sun.Static || sun.Name != parameter.SunName || sun.Mass != parameter.SunMass {
		t.Errorf("Expected static sun of mass %v, got static=%v name=%q mass=%v",
			parameter.SunMass, sun.Static, sun.Name, sun.Mass)
	}
	if sun.Radius != component.RadiusFor(component.KindStar, parameter.SunVisualMass) {
		t.Errorf("Expected sun radius from visual mass, got %v", sun.Radius)
	}
	if sun.Pos != vmath.V(700, 450) {
		t.Errorf("Expected sun at world center, got %v", sun.Pos)
	}

	for i, p := range bodies[1:] {
		want := Planets[i]
		if p.Kind != component.KindPlanet || p.Name != want.Name || p.Mass != want.Mass {
			t.Errorf("Planet %d: expected %s mass %v, got %s %q mass %v", i, want.Name, want.Mass, p.Kind, p.Name, p.Mass)
		}

		dist := vmath.Dist(sun.Pos, p.Pos)
		if math.Abs(dist-want.Dist) > 1e-9 {
			t.Errorf("%s: expected distance %v, got %v", want.Name, want.Dist, dist)
		}

		speed := p.Vel.Len()
		wantSpeed := math.Sqrt(cfg.Gravity * parameter.SunMass / want.Dist)
		if math.Abs(speed-wantSpeed) > 1e-9 {
			t.Errorf("%s: expected speed %v, got %v", want.Name, wantSpeed, speed)
		}

		// Circular orbit: velocity perpendicular to radius
		if dot := p.Vel.Dot(p.Pos.Sub(sun.Pos)); math.Abs(dot) > 1e-6 {
			t.Errorf("%s: expected tangential velocity, dot=%v", want.Name, dot)
		}
	}
}

func TestSolarSystemUsesCurrentGravity(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Gravity = 4.8
	bodies := SolarSystem(cfg, rand.New(rand.NewSource(2)))

	earth := bodies[3]
	want := math.Sqrt(4.8 * parameter.SunMass / 130)
	if math.Abs(earth.Vel.Len()-want) > 1e-9 {
		t.Errorf("Expected speed %v, got %v", want, earth.Vel.Len())
	}
}

func TestGalaxyRanges(t *testing.T) {
	cfg := engine.DefaultConfig()
	center := vmath.V(500, 400)
	bodies := DefaultGalaxy(cfg, rand.New(rand.NewSource(3)), center)

	if !cfg.PlanetInteractions {
		t.Error("Expected planet interactions enabled")
	}

	stars, planets := 0, 0
	var star *component.Body
	for _, b := range bodies {
		switch b.Kind {
		case component.KindStar:
			stars++
			star = b
			if b.Mass < parameter.GalaxyStarMassMin || b.Mass > parameter.GalaxyStarMassMax {
				t.Errorf("Star mass %v out of range", b.Mass)
			}
			off := b.Pos.Sub(center)
			if math.Abs(off.X) > parameter.GalaxySpawnRadius || math.Abs(off.Y) > parameter.GalaxySpawnRadius {
				t.Errorf("Star offset %v exceeds spawn radius", off)
			}
			if math.Abs(b.Vel.X) > parameter.GalaxyDriftMax || math.Abs(b.Vel.Y) > parameter.GalaxyDriftMax {
				t.Errorf("Star drift %v out of range", b.Vel)
			}
		case component.KindPlanet:
			planets++
			if b.Mass < parameter.GalaxyPlanetMassMin || b.Mass > parameter.GalaxyPlanetMassMax {
				t.Errorf("Planet mass %v out of range", b.Mass)
			}
			for _, c := range []uint8{b.Color.R, b.Color.G, b.Color.B} {
				if c < parameter.GalaxyPlanetChannelMin {
					t.Errorf("Planet color channel %d below minimum", c)
				}
			}
			if star != nil {
				d := vmath.Dist(star.Pos, b.Pos)
				if d < parameter.GalaxyPlanetDistMin-1e-9 || d > parameter.GalaxyPlanetDistMax+1e-9 {
					t.Errorf("Planet distance %v out of range", d)
				}
			}
		default:
			t.Errorf("Unexpected kind %s", b.Kind)
		}
	}

	if stars != parameter.GalaxySystems {
		t.Errorf("Expected %d stars, got %d", parameter.GalaxySystems, stars)
	}
	if planets < stars*parameter.GalaxyPlanetsMin || planets > stars*parameter.GalaxyPlanetsMax {
		t.Errorf("Expected planets in [%d,%d], got %d",
			stars*parameter.GalaxyPlanetsMin, stars*parameter.GalaxyPlanetsMax, planets)
	}
}

func TestSpawners(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pos := vmath.V(10, 20)

	s := Star(rng, pos)
	if s.Kind != component.KindStar || s.Mass < 2 || s.Mass > 6 {
		t.Errorf("Expected star of mass in [2,6], got %s %v", s.Kind, s.Mass)
	}
	if bh := BlackHole(rng, pos); bh.Kind != component.KindBlackHole || bh.Mass != 500 {
		t.Errorf("Expected black hole of mass 500, got %s %v", bh.Kind, bh.Mass)
	}
	if p := Pulsar(rng, pos); p.Kind != component.KindPulsar || p.Mass != 15 {
		t.Errorf("Expected pulsar of mass 15, got %s %v", p.Kind, p.Mass)
	}
	q := Quasar(rng, pos)
	if q.Kind != component.KindQuasar || q.Mass != 2000 || q.Pos != pos {
		t.Errorf("Expected quasar of mass 2000 at %v, got %s %v at %v", pos, q.Kind, q.Mass, q.Pos)
	}
	if q.Vel != vmath.Zero {
		t.Errorf("Expected spawn at rest, got %v", q.Vel)
	}
}
