package render

import (
	"math/rand"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

type backgroundStar struct {
	pos        vmath.Vec2
	brightness float64 // 0.5 to 1.5
}

// Starfield is the flickering backdrop with a slowly cycling background hue
type Starfield struct {
	stars []backgroundStar
	hue   float64
	rng   *rand.Rand
}

// NewStarfield scatters count stars over the world
func NewStarfield(rng *rand.Rand, count int, worldW, worldH float64) *Starfield {
	sf := &Starfield{
		stars: make([]backgroundStar, count),
		hue:   rng.Float64(),
		rng:   rng,
	}
	for i := range sf.stars {
		sf.stars[i] = backgroundStar{
			pos:        vmath.V(rng.Float64()*worldW, rng.Float64()*worldH),
			brightness: 0.5 + rng.Float64(),
		}
	}
	return sf
}

// Advance steps the background hue, called once per rendered frame
func (sf *Starfield) Advance() {
	sf.hue = vmath.WrapUnit(sf.hue + parameter.BackgroundHueStep)
}

// Background returns the current fill color
func (sf *Starfield) Background() component.RGB {
	return component.HSV(sf.hue, parameter.BackgroundSaturation, parameter.BackgroundValue)
}

// Draw fills the buffer background and plots flickering stars
func (sf *Starfield) Draw(buf *Buffer, view Viewport) {
	buf.Fill(sf.Background())
	for _, s := range sf.stars {
		x, y, ok := view.ToCell(s.pos)
		if !ok {
			continue
		}
		lo := int(s.brightness * 60)
		hi := int(s.brightness * 120)
		v := uint8(lo + sf.rng.Intn(hi-lo+1))
		buf.AddFg(x, y, '.', component.RGB{R: v, G: v, B: v})
	}
}
