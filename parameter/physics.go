package parameter

// Gravity
const (
	// DefaultGravity is the gravitational constant at startup and after a full reset
	DefaultGravity = 1.2

	// GravityStep is the multiplicative step applied by gravity increase/decrease
	GravityStep = 1.2

	// MinDistanceSq is the floor for squared body separation before division
	MinDistanceSq = 25.0

	// ParticleSofteningSq is added to squared separation for particle gravity pull
	ParticleSofteningSq = 100.0
)

// Stellar Evolution Thresholds
const (
	// SupernovaMassLimit is the merged mass above which two stars explode instead of merging
	SupernovaMassLimit = 25.0

	// PulsarMassLimit is the exploded mass above which the remnant is a black hole instead of a pulsar
	PulsarMassLimit = 40.0

	// AccretionFactor is the share of a consumed body's mass added to the black hole
	AccretionFactor = 0.25
)

// Supernova Shockwave
const (
	// ShockwaveStrength is the radial impulse numerator applied to surviving bodies
	ShockwaveStrength = 800.0

	// ShockwaveSofteningSq keeps the impulse finite at the merge site
	ShockwaveSofteningSq = 1.0
)

// Pointer Gravity Well
const (
	// AttractorMass is the mass of the primary-button pseudo body
	AttractorMass = 800.0

	// RepulsorMass is the mass of the secondary-button pseudo body
	RepulsorMass = -800.0
)
