package parameter

// Background
const (
	// BackgroundStarCount is the number of starfield points
	BackgroundStarCount = 800

	// BackgroundHueStep is the per-frame background hue drift
	BackgroundHueStep = 0.0001

	BackgroundSaturation = 0.8
	BackgroundValue      = 0.05
)

// Lensing
const (
	// LensRadiusFactor scales black hole radius to lensing radius
	LensRadiusFactor = 6

	// LensMassScale normalises mass to lensing strength
	LensMassScale = 2000.0
)

// HUD
const (
	HUDHelpAttract = "[L/R Mouse] Attract/Repel"
	HUDHelpSpawn   = "[S] Star | [B] Black Hole | [N] Pulsar | [Q] Quasar"
	HUDHelpScene   = "[G] Galaxy | [O] Solar System | [P] Planet Interactions"
	HUDHelpControl = "[SPACE] Pause | [R] Reset to Solar System | [+/-] Gravity | [M] Mute"

	PausedText = "PAUSED"

	ToolNone    = "None"
	ToolAttract = "Attract"
	ToolRepel   = "Repel"
)
