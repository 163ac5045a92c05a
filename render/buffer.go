package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderBuffer is the frame compositor; renderers write cells and the orchestrator flushes once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), or an empty cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetString writes s starting at (x, y) and returns the number of columns used
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	col := 0
	for _, r := range s {
		b.Set(x+col, y, r, style)
		col += max(1, runewidth.RuneWidth(r))
	}
	return col
}

// SetStringCentered writes s centered horizontally on column cx
func (b *RenderBuffer) SetStringCentered(cx, y int, s string, style tcell.Style) {
	b.SetString(cx-runewidth.StringWidth(s)/2, y, s, style)
}

// FillRect fills the inclusive cell range [x0, x1] × [y0, y1]
func (b *RenderBuffer) FillRect(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(b.width-1, x1), min(b.height-1, y1)
	for y := y0; y <= y1; y++ {
		row := y * b.width
		for x := x0; x <= x1; x++ {
			b.cells[row+x] = Cell{Rune: r, Style: style}
		}
	}
}

// FlushToScreen copies every cell to the screen; the caller shows the frame
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
