package scenario

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// Star spawns a small star at rest
func Star(rng *rand.Rand, pos vmath.Vec2) *component.Body {
	return component.NewStar(pos, vmath.Zero, uniform(rng, parameter.StarSpawnMassMin, parameter.StarSpawnMassMax))
}

// BlackHole spawns a black hole at rest with a random disk hue
func BlackHole(rng *rand.Rand, pos vmath.Vec2) *component.Body {
	return component.NewBlackHole(pos, vmath.Zero, parameter.BlackHoleMass, rng.Float64())
}

// Pulsar spawns a pulsar at rest with a random jet angle
func Pulsar(rng *rand.Rand, pos vmath.Vec2) *component.Body {
	return component.NewPulsar(pos, vmath.Zero, parameter.PulsarMass, rng.Float64()*2*math.Pi)
}

// Quasar spawns a quasar at rest with random disk hue and jet angle
func Quasar(rng *rand.Rand, pos vmath.Vec2) *component.Body {
	return component.NewQuasar(pos, vmath.Zero, parameter.QuasarMass, rng.Float64(), rng.Float64()*2*math.Pi)
}
