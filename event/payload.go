package event

import (
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// MergePayload describes a regular star merge
type MergePayload struct {
	Site   vmath.Vec2
	Mass   float64
	Result component.BodyID
}

// SupernovaPayload describes an explosion and its remnant
type SupernovaPayload struct {
	Site       vmath.Vec2
	Mass       float64
	Remnant    component.Kind
	RemnantID  component.BodyID
	Particles  int
	ShockedIDs int // Number of bodies pushed by the shockwave
}

// ConsumePayload describes a black hole accretion
type ConsumePayload struct {
	Hole     component.BodyID
	Consumed component.BodyID
	Kind     component.Kind
	Mass     float64 // Consumed body's mass
	HoleMass float64 // Black hole mass after growth
}

// EvictPayload describes population cap enforcement
type EvictPayload struct {
	Count int
}

// SpawnPayload describes a user spawn
type SpawnPayload struct {
	Kind  component.Kind
	Pos   vmath.Vec2
	Count int // Bodies added (galaxy spawns several)
}

// ResetPayload describes a scene replacement
type ResetPayload struct {
	Bodies       int
	GravityReset bool
}

// GravityPayload carries the new gravitational constant
type GravityPayload struct {
	G float64
}
