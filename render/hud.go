package render

import (
	"fmt"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/mattn/go-runewidth"
)

// HUD carries overlay state not held by the world
type HUD struct {
	Muted bool
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// HUDLines returns the overlay text, top to bottom
func HUDLines(w *engine.World, hud HUD) []string {
	supernovae := w.Status.Counter("supernova.total", "").Value()
	merges := w.Status.Counter("merge.total", "").Value()
	consumed := w.Status.Counter("consume.total", "").Value()

	return []string{
		parameter.HUDHelpAttract,
		parameter.HUDHelpSpawn,
		parameter.HUDHelpScene,
		parameter.HUDHelpControl,
		fmt.Sprintf("Objects: %d | Particles: %d", len(w.Bodies), len(w.Particles)),
		fmt.Sprintf("Gravity: %.3f | Tool: %s", w.Config.Gravity, w.Tool),
		fmt.Sprintf("Planet Interactions: %s", onOff(w.Config.PlanetInteractions)),
		fmt.Sprintf("Supernovae: %d | Merges: %d | Consumed: %d | Sound: %s", supernovae, merges, consumed, onOff(!hud.Muted)),
	}
}

func (r *Renderer) drawHUD(w *engine.World, hud HUD) {
	cols, rows := r.buf.Size()
	for i, line := range HUDLines(w, hud) {
		if i >= rows {
			break
		}
		r.text(1, i, runewidth.Truncate(line, cols-1, ""), component.RGBWhite)
	}

	if w.Config.Paused {
		width := runewidth.StringWidth(parameter.PausedText)
		r.text(cols/2-width/2, rows/2, parameter.PausedText, component.RGBWhite)
	}
}

// text writes s starting at x,y, advancing by display width and clipping at the edge
func (r *Renderer) text(x, y int, s string, fg component.RGB) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.buf.Set(x, y, ch, fg)
		for i := 1; i < w; i++ {
			r.buf.Set(x+i, y, runeContinuation, fg)
		}
		x += w
	}
}
