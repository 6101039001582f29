package engine

// SoundType identifies a synthesized cue
type SoundType uint8

const (
	SoundSupernova SoundType = iota
	SoundMerge
	SoundConsume
	SoundSpawn
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSupernova:
		return "Supernova"
	case SoundMerge:
		return "Merge"
	case SoundConsume:
		return "Consume"
	case SoundSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

// AudioPlayer is the sound sink used by the audio system
// Implementations must be non-blocking
type AudioPlayer interface {
	Play(sound SoundType) bool
	ToggleMute() bool // Returns new muted state
	IsMuted() bool
}
