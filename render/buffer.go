package render

import "github.com/gdamore/tcell/v2"

// Cell is one character position of a Buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an in-memory Screen backed by a flat cell array
// Used headless and in tests; Show only counts presented frames
type Buffer struct {
	cells  []Cell
	width  int
	height int
	shown  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
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
	b.Clear()
}

// Clear resets all cells to blank default style using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetContent writes a cell, out-of-bounds writes are dropped. Combining runes are ignored.
func (b *Buffer) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: primary, Style: style}
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Show records a presented frame
func (b *Buffer) Show() {
	b.shown++
}

// Frames returns the number of Show calls
func (b *Buffer) Frames() int {
	return b.shown
}

// Row returns the runes of row y as a string, empty when out of bounds
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		runes[x] = b.cells[y*b.width+x].Rune
	}
	return string(runes)
}
