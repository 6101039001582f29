package engine

import "github.com/lixenwraith/gravity-sandbox/vmath"

// CommandType discriminates user intents applied by the simulation between ticks
type CommandType uint8

const (
	CommandNone CommandType = iota

	CommandQuit
	CommandTogglePause
	CommandTogglePlanetInteractions
	CommandReset     // Solar system, G restored to default
	CommandReseed    // Solar system, G kept
	CommandGravityUp // G × step
	CommandGravityDown
	CommandToggleMute

	// Spawns at Pos
	CommandSpawnStar
	CommandSpawnBlackHole
	CommandSpawnPulsar
	CommandSpawnQuasar
	CommandSpawnGalaxy
)

var commandNames = map[CommandType]string{
	CommandNone:                     "None",
	CommandQuit:                     "Quit",
	CommandTogglePause:              "TogglePause",
	CommandTogglePlanetInteractions: "TogglePlanetInteractions",
	CommandReset:                    "Reset",
	CommandReseed:                   "Reseed",
	CommandGravityUp:                "GravityUp",
	CommandGravityDown:              "GravityDown",
	CommandToggleMute:               "ToggleMute",
	CommandSpawnStar:                "SpawnStar",
	CommandSpawnBlackHole:           "SpawnBlackHole",
	CommandSpawnPulsar:              "SpawnPulsar",
	CommandSpawnQuasar:              "SpawnQuasar",
	CommandSpawnGalaxy:              "SpawnGalaxy",
}

func (c CommandType) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "Unknown"
}

// IsSpawn reports whether the command adds bodies at the cursor
func (c CommandType) IsSpawn() bool {
	return c >= CommandSpawnStar && c <= CommandSpawnGalaxy
}

// Command is a resolved user intent
type Command struct {
	Type CommandType
	Pos  vmath.Vec2 // World coordinates, spawn commands only
}
