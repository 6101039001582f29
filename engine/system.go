package engine

// System is a per-tick simulation stage
// Systems hold the world they were built with
type System interface {
	Update()
	Priority() int // Lower values run first
}

// PauseExempt systems keep running while the simulation is paused
type PauseExempt interface {
	RunsWhilePaused() bool
}

// RunsWhilePaused reports whether sys must run during pause
func RunsWhilePaused(sys System) bool {
	if pe, ok := sys.(PauseExempt); ok {
		return pe.RunsWhilePaused()
	}
	return false
}
