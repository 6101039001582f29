package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/event"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// AudioSystem maps stellar events to sound cues
// Simulation systems never touch the player directly
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(world *engine.World, player engine.AudioPlayer) engine.System {
	return &AudioSystem{
		world:  world,
		player: player,
	}
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Update has no per-tick work; cues are driven by events
func (s *AudioSystem) Update() {}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStarMerged,
		event.EventSupernova,
		event.EventBodyConsumed,
		event.EventBodySpawned,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventSupernova:
		s.player.Play(engine.SoundSupernova)
	case event.EventStarMerged:
		s.player.Play(engine.SoundMerge)
	case event.EventBodyConsumed:
		s.player.Play(engine.SoundConsume)
	case event.EventBodySpawned:
		s.player.Play(engine.SoundSpawn)
	}
}
