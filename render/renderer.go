package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

const (
	glyphBody     = '●'
	glyphTrail    = '·'
	glyphParticle = '∙'
	glyphJet      = '•'
	glyphDisk     = '○'
	glyphRing     = '◦'
)

// Renderer composites the world into a cell buffer and flushes it to a tcell screen
// Reads the world only; never mutates simulation state
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
	view   Viewport
	stars  *Starfield

	worldW, worldH float64

	lensScratch []Cell
	holes       []*component.Body
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen, worldW, worldH float64, rng *rand.Rand) *Renderer {
	r := &Renderer{
		screen: screen,
		buf:    NewBuffer(0, 0),
		stars:  NewStarfield(rng, parameter.BackgroundStarCount, worldW, worldH),
		worldW: worldW,
		worldH: worldH,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.buf.Resize(cols, rows)
	r.view = NewViewport(cols, rows, r.worldW, r.worldH)
}

// Viewport returns the current world-to-cell mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Draw renders one frame
// Order: background, bodies with trails, lensing, black holes, particles, effects, HUD
func (r *Renderer) Draw(w *engine.World, hud HUD) {
	r.stars.Advance()
	r.stars.Draw(r.buf, r.view)

	r.holes = r.holes[:0]
	for _, b := range w.Bodies {
		if b.Kind.IsBlackHoleClass() {
			r.holes = append(r.holes, b)
			continue
		}
		r.drawBody(b)
	}

	for _, h := range r.holes {
		r.lensScratch = lens(r.buf, r.view, h, r.lensScratch)
	}
	for _, h := range r.holes {
		r.drawHole(h)
	}

	r.drawParticles(w.Particles)
	r.drawEffects(w.Effects)

	r.drawHUD(w, hud)

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *Renderer) drawTrail(b *component.Body) {
	n := b.Trail.Len()
	if n < 2 {
		return
	}
	b.Trail.Each(func(i int, p vmath.Vec2) {
		x, y, ok := r.view.ToCell(p)
		if !ok {
			return
		}
		age := float64(i+1) / float64(n) // Newest is brightest
		r.buf.Set(x, y, glyphTrail, b.Color.Scale(0.25+0.75*age))
	})
}

func (r *Renderer) drawBody(b *component.Body) {
	switch b.Kind {
	case component.KindStar:
		glow(r.buf, r.view, b.Pos, b.Radius, 20, 0.15, b.Color)
	case component.KindPulsar:
		glow(r.buf, r.view, b.Pos, b.Radius, 16, 0.4, b.Color)
	}

	if b.Trail != nil {
		r.drawTrail(b)
	}

	fillDisc(r.buf, r.view, b.Pos, b.Radius, b.Color, glyphBody)

	if b.Name != "" {
		x, y, ok := r.view.ToCell(b.Pos.Add(vmath.V(b.Radius+5, 0)))
		if ok {
			r.text(x, y, b.Name, component.RGBLabel)
		}
	}
}

func (r *Renderer) drawHole(b *component.Body) {
	glow(r.buf, r.view, b.Pos, b.Radius, 30, 0.3, component.RGBHoleGlow)

	if b.Kind == component.KindQuasar {
		for i := range 5 {
			c := component.HSV(vmath.WrapUnit(b.DiskHue+float64(i)*0.05), 0.9, 1)
			ring(r.buf, r.view, b.Pos, b.Radius+10+float64(i)*5, c, glyphDisk)
		}
	} else {
		c := component.HSV(b.DiskHue, 0.8, 1)
		ring(r.buf, r.view, b.Pos, b.Radius+10, c, glyphDisk)
		ring(r.buf, r.view, b.Pos, b.Radius+15, c, glyphRing)
	}

	fillDisc(r.buf, r.view, b.Pos, b.Radius, component.RGBBlack, glyphBody)
}

func (r *Renderer) drawParticles(particles []component.Particle) {
	for i := range particles {
		p := &particles[i]
		x, y, ok := r.view.ToCell(p.Pos)
		if !ok {
			continue
		}
		glyph := glyphJet
		if p.GravityAffected {
			glyph = glyphParticle
		}
		r.buf.AddFg(x, y, glyph, p.Color.Scale(p.Fade()))
	}
}

func (r *Renderer) drawEffects(effects []component.Effect) {
	for i := range effects {
		e := &effects[i]
		switch e.Kind {
		case component.EffectFlash:
			additiveDisc(r.buf, r.view, e.Pos, e.CurrentRadius(), e.Alpha(), component.RGBFlash)
		}
	}
}
