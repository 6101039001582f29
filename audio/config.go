package audio

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes [engine.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the startup audio settings
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	cfg.EffectVolumes[engine.SoundSupernova] = 0.9
	cfg.EffectVolumes[engine.SoundMerge] = 0.5
	cfg.EffectVolumes[engine.SoundConsume] = 0.4
	cfg.EffectVolumes[engine.SoundSpawn] = 0.3
	return cfg
}

// Volume returns the effective gain of a sound
func (c *AudioConfig) Volume(s engine.SoundType) float64 {
	if s >= engine.SoundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
