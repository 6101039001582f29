package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravity-sandbox/engine"
)

// KeyTable maps keys to simulation commands
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]engine.CommandType

	// Rune bindings, letters match either case
	Runes map[rune]engine.CommandType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.CommandType{
			tcell.KeyEscape: engine.CommandQuit,
			tcell.KeyCtrlC:  engine.CommandQuit,
			tcell.KeyCtrlQ:  engine.CommandQuit,
		},
		Runes: map[rune]engine.CommandType{
			' ': engine.CommandTogglePause,
			'p': engine.CommandTogglePlanetInteractions,
			'r': engine.CommandReset,
			'o': engine.CommandReseed,
			'+': engine.CommandGravityUp,
			'=': engine.CommandGravityUp,
			'-': engine.CommandGravityDown,
			'm': engine.CommandToggleMute,
			's': engine.CommandSpawnStar,
			'b': engine.CommandSpawnBlackHole,
			'n': engine.CommandSpawnPulsar,
			'q': engine.CommandSpawnQuasar,
			'g': engine.CommandSpawnGalaxy,
			'P': engine.CommandTogglePlanetInteractions,
			'R': engine.CommandReset,
			'O': engine.CommandReseed,
			'M': engine.CommandToggleMute,
			'S': engine.CommandSpawnStar,
			'B': engine.CommandSpawnBlackHole,
			'N': engine.CommandSpawnPulsar,
			'Q': engine.CommandSpawnQuasar,
			'G': engine.CommandSpawnGalaxy,
		},
	}
}

// Lookup resolves a key event, CommandNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.CommandType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
