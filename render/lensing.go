package render

import (
	"github.com/lixenwraith/gravity-sandbox/component"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// lens pulls the already-drawn scene toward a black hole:
// each cell within LensRadiusFactor*radius samples the cell at offset*(1-strength),
// strength = mass/LensMassScale * (1 - dist/lensRadius)
// Skipped when the lens area crosses the screen edge
func lens(buf *Buffer, view Viewport, hole *component.Body, scratch []Cell) []Cell {
	lensRadius := hole.Radius * parameter.LensRadiusFactor
	if lensRadius <= 0 || !view.FullyVisible(hole.Pos, lensRadius) {
		return scratch
	}

	x0, y0, x1, y1 := view.CellBounds(hole.Pos, lensRadius)
	w, h := x1-x0+1, y1-y0+1
	if w <= 0 || h <= 0 {
		return scratch
	}

	// Snapshot so sampling reads the unlensed scene
	scratch = scratch[:0]
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			scratch = append(scratch, buf.Get(x, y))
		}
	}

	forCells(view, hole.Pos, lensRadius, func(x, y int, dist float64) {
		if dist == 0 {
			return
		}
		strength := (hole.Mass / parameter.LensMassScale) * (1 - dist/lensRadius)
		offset := view.ToWorld(x, y).Sub(hole.Pos).Scale(1 - strength)
		sx, sy, ok := view.ToCell(hole.Pos.Add(offset))
		if !ok || sx < x0 || sx > x1 || sy < y0 || sy > y1 {
			return
		}
		buf.SetCell(x, y, scratch[(sy-y0)*w+(sx-x0)])
	})
	return scratch
}
