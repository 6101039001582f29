package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/pkg/errors"
)

// Player mixes synthesized cues onto the speaker
// Safe for concurrent use; Play never blocks on audio output
type Player struct {
	config *AudioConfig
	mixer  *beep.Mixer

	mu       sync.Mutex
	lastPlay [engine.SoundTypeCount]time.Time
	now      func() time.Time

	started atomic.Bool
	muted   atomic.Bool
}

// NewPlayer creates a player; call Start to open the output device
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the speaker and attaches the mixer
func (p *Player) Start() error {
	if p.started.Load() {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(p.mixer)
	p.started.Store(true)
	return nil
}

// Stop clears pending sounds and closes the device
func (p *Player) Stop() {
	if !p.started.Swap(false) {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues a sound, returns false when muted, stopped or throttled
func (p *Player) Play(sound engine.SoundType) bool {
	if p.muted.Load() || !p.started.Load() {
		return false
	}
	if !p.admit(sound) {
		return false
	}

	s := GetSoundEffect(sound, p.config)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// admit enforces MinSoundGap per sound type
func (p *Player) admit(sound engine.SoundType) bool {
	if sound >= engine.SoundTypeCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastPlay[sound]) < parameter.MinSoundGap {
		return false
	}
	p.lastPlay[sound] = now
	return true
}

// ToggleMute flips mute state, returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *Player) IsMuted() bool {
	return p.muted.Load()
}
