package parameter

// Population
const (
	// MaxBodies is the registry population cap, lowest mass evicted first
	MaxBodies = 300
)

// Radius factors, radius = round(sqrt(|mass|) * factor)
const (
	RadiusFactorGeneric   = 2.5
	RadiusFactorStar      = 3.0
	RadiusFactorBlackHole = 1.5
	RadiusFactorQuasar    = 1.2
	RadiusFactorPulsar    = 1.2
)

// Trails
const (
	// PlanetTrailLength is the number of past positions kept for planets
	PlanetTrailLength = 500

	// StarTrailLength is the number of past positions kept for stars
	StarTrailLength = 100
)

// Default spawn masses
const (
	StarSpawnMassMin = 2.0
	StarSpawnMassMax = 6.0
	BlackHoleMass    = 500.0
	PulsarMass       = 15.0
	QuasarMass       = 2000.0
)

// Rotation and accretion disk animation, per tick
const (
	PulsarRotationSpeed = 0.1
	QuasarRotationSpeed = 0.03

	BlackHoleDiskHueStep = 0.01
	QuasarDiskHueStep    = 0.02
)

// Solar System
const (
	// SunVisualMass sizes the sun's display radius
	SunVisualMass = 30.0

	// SunMass is the sun's gravitational mass, decoupled from its display radius
	SunMass = 20000.0

	SunName = "Sun"
)

// Galaxy
const (
	GalaxySystems     = 3
	GalaxySpawnRadius = 250.0

	GalaxyStarMassMin = 800.0
	GalaxyStarMassMax = 2000.0
	GalaxyDriftMax    = 0.5

	GalaxyPlanetsMin       = 2
	GalaxyPlanetsMax       = 5
	GalaxyPlanetDistMin    = 40.0
	GalaxyPlanetDistMax    = 150.0
	GalaxyPlanetMassMin    = 0.1
	GalaxyPlanetMassMax    = 2.5
	GalaxyPlanetChannelMin = 100
	GalaxyPlanetChannelMax = 255
)
