package render

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// forCells visits every on-screen cell whose center lies within radius of c, with its world distance
func forCells(view Viewport, c vmath.Vec2, radius float64, fn func(x, y int, dist float64)) {
	if radius <= 0 {
		return
	}
	x0, y0, x1, y1 := view.CellBounds(c, radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := vmath.Dist(view.ToWorld(x, y), c)
			if d <= radius {
				fn(x, y, d)
			}
		}
	}
}

// fillDisc paints a solid disc; discs smaller than a cell fall back to a glyph at the center
func fillDisc(buf *Buffer, view Viewport, c vmath.Vec2, radius float64, color component.RGB, glyph rune) {
	covered := false
	forCells(view, c, radius, func(x, y int, _ float64) {
		buf.SetBg(x, y, color)
		covered = true
	})
	if covered {
		return
	}
	if x, y, ok := view.ToCell(c); ok {
		buf.Set(x, y, glyph, color)
	}
}

// glow adds a soft halo of extent world units outside radius, quadratic falloff
func glow(buf *Buffer, view Viewport, c vmath.Vec2, radius, extent, intensity float64, color component.RGB) {
	outer := radius + extent
	forCells(view, c, outer, func(x, y int, d float64) {
		if d < radius {
			return
		}
		t := (outer - d) / extent
		buf.AddBg(x, y, color.Scale(intensity*t*t))
	})
}

// ring plots a circle outline by angular stepping, one glyph per visited cell
func ring(buf *Buffer, view Viewport, c vmath.Vec2, radius float64, color component.RGB, glyph rune) {
	if radius <= 0 {
		return
	}
	sx, sy := view.Scale()
	cells := 2 * math.Pi * radius * max(sx, sy)
	steps := max(int(cells*2), 16)

	lastX, lastY := -1, -1
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y, ok := view.ToCell(c.Add(vmath.FromAngle(a, radius)))
		if !ok || (x == lastX && y == lastY) {
			continue
		}
		buf.Set(x, y, glyph, color)
		lastX, lastY = x, y
	}
}

// additiveDisc brightens every cell within radius by color scaled with alpha
func additiveDisc(buf *Buffer, view Viewport, c vmath.Vec2, radius, alpha float64, color component.RGB) {
	if alpha <= 0 {
		return
	}
	tint := color.Scale(alpha)
	forCells(view, c, radius, func(x, y int, _ float64) {
		buf.AddBg(x, y, tint)
	})
}
