package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravity-sandbox/component"
)

// runeContinuation marks the trailing cell of a wide rune, skipped on flush
const runeContinuation rune = -1

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   component.RGB
	Bg   component.RGB
}

// Buffer is a compositor over a fixed grid of cells, flushed to tcell once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Fill resets every cell to a blank with the given background, using exponential copy
func (b *Buffer) Fill(bg component.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: component.RGBWhite, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// InBounds returns true if x,y is on the grid
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds returns the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set replaces rune and foreground, keeping background
func (b *Buffer) Set(x, y int, r rune, fg component.RGB) {
	if !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// SetCell replaces the whole cell
func (b *Buffer) SetCell(x, y int, cell Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = cell
}

// SetBg replaces background and clears the glyph
func (b *Buffer) SetBg(x, y int, bg component.RGB) {
	if !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = ' '
	c.Bg = bg
}

// AddBg blends color additively into the background, saturating per channel
func (b *Buffer) AddBg(x, y int, color component.RGB) {
	if !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = c.Bg.Add(color)
}

// AddFg places r with an additively blended foreground
// An existing glyph is kept and only its color brightens
func (b *Buffer) AddFg(x, y int, r rune, color component.RGB) {
	if !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	if c.Rune == ' ' || c.Rune == 0 {
		c.Rune = r
		c.Fg = color
		return
	}
	c.Fg = c.Fg.Add(color)
}

// Flush writes every cell to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == runeContinuation {
				continue
			}
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func toTcell(c component.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
