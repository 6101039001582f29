package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/gravity-sandbox/engine"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if a := math.Abs(buf[i][0]); a > peak {
				peak = a
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected mono signal on both channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorNoiseVaries verifies noise is bounded and not constant
func TestOscillatorNoiseVaries(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 50*time.Millisecond, WaveNoise, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	allSame := true
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[0][0] {
			allSame = false
		}
	}
	if allSame {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

// TestOscillatorDuration verifies the oscillator stops at its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewSweep(200, 800, duration, WaveSaw, rate)
	total, _ := drain(osc)

	if total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected exhausted stream, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies attack ramps from silence and release ends near silence
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // Constant +1 at zero frequency
	env := NewEnvelope(osc, duration, attack, release, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	mid := n / 2
	if samples[mid][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", samples[mid][0])
	}
	if last := samples[n-1][0]; last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}
}

// TestSoundEffectsFinite verifies every cue terminates and is audible
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1

	for s := engine.SoundType(0); s < engine.SoundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Fatalf("%s: expected streamer", s)
		}
		total, peak := drain(streamer)
		if total == 0 || total > cfg.SampleRate*2 {
			t.Errorf("%s: unexpected length %d", s, total)
		}
		if peak == 0 {
			t.Errorf("%s: expected audible output", s)
		}
	}

	if GetSoundEffect(engine.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

// TestVolumeZeroSilent verifies zero gain yields silence
func TestVolumeZeroSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(CreateMergeSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
