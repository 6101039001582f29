package component

import (
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit display color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBNearWhite = RGB{255, 255, 220}
	RGBPulsar    = RGB{220, 255, 255}
	RGBLabel     = RGB{200, 200, 200}
	RGBFlash     = RGB{255, 255, 230}
	RGBHoleGlow  = RGB{50, 50, 100}
	RGBRedDwarf  = RGB{255, 180, 120}
	RGBYellow    = RGB{255, 255, 220}
	RGBBlueGiant = RGB{170, 220, 255}
	RGBBlueWhite = RGB{210, 240, 255}
)

// ColorForMass maps star mass to color, from red dwarf to pre-supernova blue-white
func ColorForMass(mass float64) RGB {
	switch {
	case mass < 4:
		return RGBRedDwarf
	case mass < 10:
		return RGBYellow
	case mass < parameter.SupernovaMassLimit:
		return RGBBlueGiant
	default:
		return RGBBlueWhite
	}
}

// HSV converts hue/saturation/value in [0,1] to RGB, hue wraps
func HSV(h, s, v float64) RGB {
	c := colorful.Hsv(vmath.WrapUnit(h)*360, s, v)
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Lerp blends c toward target by t in [0,1] in linear RGB space
func (c RGB) Lerp(target RGB, t float64) RGB {
	t = vmath.Clamp(t, 0, 1)
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(target.R) / 255, G: float64(target.G) / 255, B: float64(target.B) / 255}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return RGB{r, g, bl}
}

// Scale multiplies all channels by f in [0,1]
func (c RGB) Scale(f float64) RGB {
	f = vmath.Clamp(f, 0, 1)
	return RGB{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f)}
}

// Add saturates per channel, used for additive glow
func (c RGB) Add(o RGB) RGB {
	return RGB{addSat(c.R, o.R), addSat(c.G, o.G), addSat(c.B, o.B)}
}

func addSat(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
