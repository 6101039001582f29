package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 60 * time.Millisecond
)

// Supernova Sound
const (
	SupernovaSoundDuration = 900 * time.Millisecond
	SupernovaSoundAttack   = 10 * time.Millisecond
	SupernovaSoundRelease  = 700 * time.Millisecond
)

// Merge Sound
const (
	MergeSoundDuration = 220 * time.Millisecond
	MergeSoundAttack   = 5 * time.Millisecond
	MergeSoundRelease  = 150 * time.Millisecond
)

// Consume Sound
const (
	ConsumeSoundDuration = 180 * time.Millisecond
	ConsumeSoundAttack   = 5 * time.Millisecond
	ConsumeSoundRelease  = 120 * time.Millisecond
)

// Spawn Sound
const (
	SpawnSoundDuration = 90 * time.Millisecond
	SpawnSoundAttack   = 3 * time.Millisecond
	SpawnSoundRelease  = 40 * time.Millisecond
)
