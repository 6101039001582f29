package parameter

// System Execution Priorities (lower runs first)
// Order: interaction → consume → collision → commit → integration → emit → particles → effects → cleanup → stats → audio
const (
	PriorityInteraction = 10
	PriorityConsume     = 20
	PriorityCollision   = 30
	PriorityCommit      = 40 // Applies deferred removals and additions
	PriorityIntegration = 50
	PriorityEmitter     = 60
	PriorityParticle    = 70
	PriorityEffect      = 80
	PriorityCleanup     = 90
	PriorityStats       = 900 // Telemetry, runs while paused
	PriorityAudio       = 950
)
