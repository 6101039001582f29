package event

// EventType represents the type of simulation event
type EventType int

const (
	EventNone EventType = iota

	// === Stellar Events ===

	// EventStarMerged signals a sub-supernova merge of two stars
	// Trigger: CollisionSystem | Consumer: AudioSystem, StatsSystem | Payload: *MergePayload
	EventStarMerged

	// EventSupernova signals an explosive merge and its remnant
	// Trigger: CollisionSystem | Consumer: AudioSystem, StatsSystem | Payload: *SupernovaPayload
	EventSupernova

	// EventBodyConsumed signals a black hole absorbing a body
	// Trigger: ConsumeSystem | Consumer: AudioSystem, StatsSystem | Payload: *ConsumePayload
	EventBodyConsumed

	// EventBodiesEvicted signals population cap enforcement
	// Trigger: CleanupSystem | Consumer: StatsSystem | Payload: *EvictPayload
	EventBodiesEvicted

	// === User Events ===

	// EventBodySpawned signals a user spawn at the cursor
	// Trigger: Simulation | Consumer: AudioSystem, StatsSystem | Payload: *SpawnPayload
	EventBodySpawned

	// EventSceneReset signals the registry was replaced by a fresh scenario
	// Trigger: Simulation | Consumer: StatsSystem | Payload: *ResetPayload
	EventSceneReset

	// EventGravityChanged signals the gravitational constant was adjusted
	// Trigger: Simulation | Consumer: StatsSystem | Payload: *GravityPayload
	EventGravityChanged
)

var typeNames = map[EventType]string{
	EventNone:           "None",
	EventStarMerged:     "StarMerged",
	EventSupernova:      "Supernova",
	EventBodyConsumed:   "BodyConsumed",
	EventBodiesEvicted:  "BodiesEvicted",
	EventBodySpawned:    "BodySpawned",
	EventSceneReset:     "SceneReset",
	EventGravityChanged: "GravityChanged",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// GameEvent is a typed event with frame stamp
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
