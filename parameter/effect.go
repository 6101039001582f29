package parameter

// Supernova Flash
const (
	// FlashMaxRadius is the final radius of the expanding flash in world units
	FlashMaxRadius = 300.0

	// FlashDuration is the flash lifetime in ticks
	FlashDuration = 40
)
