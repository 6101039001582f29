package engine

import "github.com/lixenwraith/gravity-sandbox/parameter"

// Config is the mutable simulation configuration threaded through every tick
type Config struct {
	// Gravity is the gravitational constant G, user adjustable
	Gravity float64

	// PlanetInteractions enables Planet↔Planet pull; scenarios toggle it
	PlanetInteractions bool

	// Paused freezes physics and collision; rendering continues
	Paused bool

	// MaxBodies is the registry population cap
	MaxBodies int

	// Width and Height bound the world in world units; the solar system is centered in it
	Width, Height float64
}

// DefaultConfig returns the startup configuration
func DefaultConfig() *Config {
	return &Config{
		Gravity:            parameter.DefaultGravity,
		PlanetInteractions: true,
		MaxBodies:          parameter.MaxBodies,
		Width:              parameter.WorldWidth,
		Height:             parameter.WorldHeight,
	}
}

// IncreaseGravity multiplies G by GravityStep
func (c *Config) IncreaseGravity() { c.Gravity *= parameter.GravityStep }

// DecreaseGravity divides G by GravityStep
func (c *Config) DecreaseGravity() { c.Gravity /= parameter.GravityStep }

// ResetGravity restores DefaultGravity regardless of the configured startup value
func (c *Config) ResetGravity() { c.Gravity = parameter.DefaultGravity }
