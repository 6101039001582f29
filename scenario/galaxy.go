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

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intRange returns an integer in [lo, hi]
func intRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Galaxy returns numSystems drifting star systems scattered around center
// Enables planet-planet interactions on cfg
func Galaxy(cfg *engine.Config, rng *rand.Rand, center vmath.Vec2, numSystems int, spawnRadius float64) []*component.Body {
	cfg.PlanetInteractions = true

	var bodies []*component.Body
	for range numSystems {
		origin := center.Add(vmath.V(
			uniform(rng, -spawnRadius, spawnRadius),
			uniform(rng, -spawnRadius, spawnRadius),
		))

		starMass := uniform(rng, parameter.GalaxyStarMassMin, parameter.GalaxyStarMassMax)
		drift := vmath.V(
			uniform(rng, -parameter.GalaxyDriftMax, parameter.GalaxyDriftMax),
			uniform(rng, -parameter.GalaxyDriftMax, parameter.GalaxyDriftMax),
		)
		bodies = append(bodies, component.NewStar(origin, drift, starMass))

		planets := intRange(rng, parameter.GalaxyPlanetsMin, parameter.GalaxyPlanetsMax)
		for range planets {
			dist := uniform(rng, parameter.GalaxyPlanetDistMin, parameter.GalaxyPlanetDistMax)
			angle := rng.Float64() * 2 * math.Pi
			offset, orbit := physics.OrbitalInsert(cfg.Gravity, starMass, angle, dist)

			mass := uniform(rng, parameter.GalaxyPlanetMassMin, parameter.GalaxyPlanetMassMax)
			color := component.RGB{
				R: uint8(intRange(rng, parameter.GalaxyPlanetChannelMin, parameter.GalaxyPlanetChannelMax)),
				G: uint8(intRange(rng, parameter.GalaxyPlanetChannelMin, parameter.GalaxyPlanetChannelMax)),
				B: uint8(intRange(rng, parameter.GalaxyPlanetChannelMin, parameter.GalaxyPlanetChannelMax)),
			}
			bodies = append(bodies, component.NewPlanet(origin.Add(offset), drift.Add(orbit), mass, color, ""))
		}
	}

	return bodies
}

// DefaultGalaxy spawns the standard three-system cluster
func DefaultGalaxy(cfg *engine.Config, rng *rand.Rand, center vmath.Vec2) []*component.Body {
	return Galaxy(cfg, rng, center, parameter.GalaxySystems, parameter.GalaxySpawnRadius)
}
