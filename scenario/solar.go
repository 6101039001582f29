// Package scenario builds initial and user-spawned body sets
package scenario

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/physics"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// PlanetSpec is one row of the solar system table
type PlanetSpec struct {
	Name  string
	Mass  float64
	Color component.RGB
	Dist  float64 // Orbital radius from the sun
}

// Planets is the solar system table, innermost first
var Planets = []PlanetSpec{
	{"Mercury", 0.1, component.RGB{R: 150, G: 150, B: 150}, 60},
	{"Venus", 0.8, component.RGB{R: 200, G: 150, B: 100}, 90},
	{"Earth", 1.0, component.RGB{R: 100, G: 150, B: 255}, 130},
	{"Mars", 0.2, component.RGB{R: 255, G: 100, B: 50}, 180},
	{"Jupiter", 300, component.RGB{R: 210, G: 180, B: 140}, 280},
	{"Saturn", 95, component.RGB{R: 220, G: 210, B: 180}, 380},
	{"Uranus", 14, component.RGB{R: 180, G: 220, B: 220}, 460},
	{"Neptune", 17, component.RGB{R: 100, G: 100, B: 255}, 520},
}

// NewSun creates the static central star
// Display radius and color follow SunVisualMass, gravity uses SunMass
func NewSun(pos vmath.Vec2) *component.Body {
	sun := component.NewStar(pos, vmath.Zero, parameter.SunVisualMass)
	sun.Mass = parameter.SunMass
	sun.Name = parameter.SunName
	sun.Static = true
	return sun
}

// SolarSystem returns the sun and eight planets in circular orbits about the world center
// Disables planet-planet interactions on cfg for stable orbits
func SolarSystem(cfg *engine.Config, rng *rand.Rand) []*component.Body {
	cfg.PlanetInteractions = false

	center := vmath.V(math.Floor(cfg.Width/2), math.Floor(cfg.Height/2))
	bodies := make([]*component.Body, 0, len(Planets)+1)
	bodies = append(bodies, NewSun(center))

	for _, p := range Planets {
		angle := rng.Float64() * 2 * math.Pi
		offset, vel := physics.OrbitalInsert(cfg.Gravity, parameter.SunMass, angle, p.Dist)
		bodies = append(bodies, component.NewPlanet(center.Add(offset), vel, p.Mass, p.Color, p.Name))
	}

	return bodies
}
