package render

import (
	"math"

	"github.com/lixenwraith/gravity-sandbox/vmath"
)

// Viewport maps world units onto terminal cells, stretching each axis independently
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// NewViewport creates a viewport for a cols x rows grid over a worldW x worldH world
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
}

// Scale returns cells per world unit on each axis
func (v Viewport) Scale() (sx, sy float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.Cols) / v.WorldW, float64(v.Rows) / v.WorldH
}

// ToCell returns the cell containing world point p; ok is false off-screen
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	sx, sy := v.Scale()
	fx, fy := p.X*sx, p.Y*sy
	if math.IsNaN(fx) || math.IsNaN(fy) || math.IsInf(fx, 0) || math.IsInf(fy, 0) {
		return 0, 0, false
	}
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < v.Cols && y >= 0 && y < v.Rows
}

// ToWorld returns the world point at the center of cell x,y
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return vmath.Zero
	}
	return vmath.V((float64(x)+0.5)/sx, (float64(y)+0.5)/sy)
}

// CellBounds returns the clipped cell rectangle covering a world disc of radius r at c
// Empty when x0 > x1 or y0 > y1
func (v Viewport) CellBounds(c vmath.Vec2, r float64) (x0, y0, x1, y1 int) {
	sx, sy := v.Scale()
	x0 = max(int(math.Floor((c.X-r)*sx)), 0)
	y0 = max(int(math.Floor((c.Y-r)*sy)), 0)
	x1 = min(int(math.Floor((c.X+r)*sx)), v.Cols-1)
	y1 = min(int(math.Floor((c.Y+r)*sy)), v.Rows-1)
	return x0, y0, x1, y1
}

// FullyVisible reports whether the world disc lies entirely on screen
func (v Viewport) FullyVisible(c vmath.Vec2, r float64) bool {
	return c.X-r >= 0 && c.Y-r >= 0 && c.X+r <= v.WorldW && c.Y+r <= v.WorldH
}
