package component

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// BodyID is a stable registry identity, assigned once and never reused within a world
type BodyID uint64

// Spin is the jet emitter rotation state of pulsars and quasars
type Spin struct {
	Angle float64 // Radians in [0, 2π)
	Speed float64 // Radians per tick
}

// Body is the tagged variant of all simulated bodies
// Shared state lives in the struct; per-variant state (Trail, Spin, DiskHue) is set only where Kind uses it
type Body struct {
	ID   BodyID
	Kind Kind

	Pos vmath.Vec2
	Vel vmath.Vec2

	// Mass may be negative for the repulsor pseudo body; mutate through SetMass
	Mass   float64
	Radius float64

	Color  RGB
	Name   string
	Static bool // Excluded from integration, acts as a fixed gravity source

	Trail *Trail // Planet and Star only

	Spin    Spin    // Pulsar and Quasar only
	DiskHue float64 // BlackHole and Quasar only, in [0, 1)
}

// RadiusFactor returns the mass-to-radius multiplier of a kind
func RadiusFactor(k Kind) float64 {
	switch k {
	case KindStar:
		return parameter.RadiusFactorStar
	case KindBlackHole:
		return parameter.RadiusFactorBlackHole
	case KindQuasar:
		return parameter.RadiusFactorQuasar
	case KindPulsar:
		return parameter.RadiusFactorPulsar
	default:
		return parameter.RadiusFactorGeneric
	}
}

// RadiusFor derives the display and collision radius from mass, minimum 1
func RadiusFor(k Kind, mass float64) float64 {
	r := math.Round(math.Sqrt(math.Abs(mass)) * RadiusFactor(k))
	if r < 1 {
		return 1
	}
	return r
}

// SetMass updates mass and re-derives radius
func (b *Body) SetMass(m float64) {
	b.Mass = m
	b.Radius = RadiusFor(b.Kind, m)
}

// Momentum returns mass * velocity
func (b *Body) Momentum() vmath.Vec2 {
	return b.Vel.Scale(b.Mass)
}

// IsResident reports whether the body belongs in the registry
func (b *Body) IsResident() bool {
	return b.Kind != KindAttractor
}

func newBody(k Kind, pos, vel vmath.Vec2, mass float64, color RGB) *Body {
	b := &Body{
		Kind:  k,
		Pos:   pos,
		Vel:   vel,
		Color: color,
	}
	b.SetMass(mass)
	return b
}

// NewStar creates a star colored by its mass, with a 100-point trail
func NewStar(pos, vel vmath.Vec2, mass float64) *Body {
	b := newBody(KindStar, pos, vel, mass, ColorForMass(mass))
	b.Trail = NewTrail(parameter.StarTrailLength)
	return b
}

// NewPlanet creates a planet with a 500-point trail
func NewPlanet(pos, vel vmath.Vec2, mass float64, color RGB, name string) *Body {
	b := newBody(KindPlanet, pos, vel, mass, color)
	b.Name = name
	b.Trail = NewTrail(parameter.PlanetTrailLength)
	return b
}

// NewBlackHole creates a black hole; hue seeds the accretion disk color
func NewBlackHole(pos, vel vmath.Vec2, mass, hue float64) *Body {
	b := newBody(KindBlackHole, pos, vel, mass, RGBBlack)
	b.DiskHue = vmath.WrapUnit(hue)
	return b
}

// NewQuasar creates a jet-emitting black hole
func NewQuasar(pos, vel vmath.Vec2, mass, hue, angle float64) *Body {
	b := newBody(KindQuasar, pos, vel, mass, RGBBlack)
	b.DiskHue = vmath.WrapUnit(hue)
	b.Spin = Spin{Angle: vmath.WrapAngle(angle), Speed: parameter.QuasarRotationSpeed}
	return b
}

// NewPulsar creates a jet-emitting neutron star
func NewPulsar(pos, vel vmath.Vec2, mass, angle float64) *Body {
	b := newBody(KindPulsar, pos, vel, mass, RGBPulsar)
	b.Spin = Spin{Angle: vmath.WrapAngle(angle), Speed: parameter.PulsarRotationSpeed}
	return b
}

// NewAttractor creates a transient pointer gravity well, negative mass repels
func NewAttractor(pos vmath.Vec2, mass float64) *Body {
	return newBody(KindAttractor, pos, vmath.Zero, mass, RGBBlack)
}
