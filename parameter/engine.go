package parameter

import "time"

// Simulation Loop
const (
	// TicksPerSecond is the default fixed simulation and frame rate
	TicksPerSecond = 60

	// TickInterval is the default frame interval
	TickInterval = time.Second / TicksPerSecond
)

// World Dimensions, in world units
const (
	WorldWidth  = 1400.0
	WorldHeight = 900.0
)

// Event Queue
const (
	// EventQueueSize bounds the events kept per tick
	EventQueueSize = 1024
)

// Input
const (
	// SpawnRateLimit is the sustained number of spawn requests accepted per second
	SpawnRateLimit = 12

	// SpawnBurst is the number of spawn requests accepted back to back
	SpawnBurst = 4

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 256
)
