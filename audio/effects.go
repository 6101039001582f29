package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch glide
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSupernovaSound generates a noise burst over a falling low rumble
func CreateSupernovaSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.SupernovaSoundDuration

	blast := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.SupernovaSoundAttack, parameter.SupernovaSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(90, 30, d, WaveSine, rate), d, parameter.SupernovaSoundAttack, parameter.SupernovaSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(blast, 0.6),
		newVolume(rumble, 0.8),
	)
	return newVolume(mixed, cfg.Volume(engine.SoundSupernova))
}

// CreateMergeSound generates a soft two-tone thump
func CreateMergeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.MergeSoundDuration

	low := NewEnvelope(NewOscillator(220, d, WaveSine, rate), d, parameter.MergeSoundAttack, parameter.MergeSoundRelease, rate)
	fifth := NewEnvelope(NewOscillator(330, d, WaveSine, rate), d, parameter.MergeSoundAttack, parameter.MergeSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(low, 0.7),
		newVolume(fifth, 0.3),
	)
	return newVolume(mixed, cfg.Volume(engine.SoundMerge))
}

// CreateConsumeSound generates a descending saw swallow
func CreateConsumeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ConsumeSoundDuration

	sweep := NewSweep(400, 60, d, WaveSaw, rate)
	shaped := NewEnvelope(sweep, d, parameter.ConsumeSoundAttack, parameter.ConsumeSoundRelease, rate)
	return newVolume(shaped, cfg.Volume(engine.SoundConsume))
}

// CreateSpawnSound generates a short rising blip
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.SpawnSoundDuration

	blip := NewSweep(660, 990, d, WaveSquare, rate)
	shaped := NewEnvelope(blip, d, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease, rate)
	return newVolume(shaped, cfg.Volume(engine.SoundSpawn))
}

// GetSoundEffect returns the streamer for a sound type, nil if unknown
func GetSoundEffect(soundType engine.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case engine.SoundSupernova:
		return CreateSupernovaSound(cfg)
	case engine.SoundMerge:
		return CreateMergeSound(cfg)
	case engine.SoundConsume:
		return CreateConsumeSound(cfg)
	case engine.SoundSpawn:
		return CreateSpawnSound(cfg)
	default:
		return nil
	}
}
