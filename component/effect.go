package component

import "github.com/lixenwraith/gravity-sandbox/vmath"

// EffectKind discriminates purely visual effects
type EffectKind uint8

const (
	EffectFlash EffectKind = iota
)

// Effect is an expanding visual event, owned by the world effect list
type Effect struct {
	Kind      EffectKind
	Pos       vmath.Vec2
	MaxRadius float64
	Duration  int // Total ticks
	Life      int // Remaining ticks
}

// NewFlash creates a supernova flash
func NewFlash(pos vmath.Vec2, maxRadius float64, duration int) Effect {
	return Effect{
		Kind:      EffectFlash,
		Pos:       pos,
		MaxRadius: maxRadius,
		Duration:  duration,
		Life:      duration,
	}
}

// Alive reports whether the effect has ticks left
func (e *Effect) Alive() bool { return e.Life > 0 }

// Progress returns elapsed ratio in [0,1]
func (e *Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(e.Duration-e.Life) / float64(e.Duration)
	return vmath.Clamp(p, 0, 1)
}

// CurrentRadius returns the visual radius at the current progress
func (e *Effect) CurrentRadius() float64 {
	return e.Progress() * e.MaxRadius
}

// Alpha returns visual intensity, 1 - progress²
func (e *Effect) Alpha() float64 {
	p := e.Progress()
	return 1 - p*p
}
