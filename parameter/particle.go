package parameter

// Supernova Burst
const (
	// SupernovaParticleCount is the number of debris particles per explosion
	SupernovaParticleCount = 300

	// SupernovaParticleLife is debris lifetime in ticks
	SupernovaParticleLife = 100

	SupernovaParticleSpeedMin = 1.0
	SupernovaParticleSpeedMax = 7.0
)

// Pulsar Jets
const (
	PulsarJetSpeed = 8.0
	PulsarJetLife  = 60

	// PulsarEmitChance is the per-tick probability of a jet pair
	PulsarEmitChance = 0.8
)

// Quasar Jets
const (
	QuasarJetSpeed = 15.0
	QuasarJetLife  = 120

	// QuasarEmitChance is the per-tick probability of a jet pair
	QuasarEmitChance = 0.9

	// QuasarJetHueShift offsets jet hue from the accretion disk hue
	QuasarJetHueShift = 0.5
)
