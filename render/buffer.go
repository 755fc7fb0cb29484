package render

import "github.com/gdamore/tcell/v2"

// bufferCell is one composed screen position
type bufferCell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a frame compositor with touched tracking
// Later writes to a position replace earlier ones; only touched cells are flushed
type Buffer struct {
	cells   []bufferCell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	return &Buffer{
		cells:   make([]bufferCell, size),
		touched: make([]bool, size),
		width:   width,
		height:  height,
	}
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = bufferCell{Style: tcell.StyleDefault}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a rune with style, out of bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = bufferCell{Rune: r, Style: style}
	b.touched[idx] = true
}

// Text writes s left to right starting at x, y
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		b.Set(x+i, y, r, style)
		i++
	}
}

// Get returns the composed cell, ok is false for untouched or out of bounds positions
func (b *Buffer) Get(x, y int) (rune, tcell.Style, bool) {
	if !b.inBounds(x, y) {
		return 0, tcell.StyleDefault, false
	}
	idx := y*b.width + x
	c := b.cells[idx]
	return c.Rune, c.Style, b.touched[idx]
}

// Flush clears the screen, writes every touched cell and shows the frame
func (b *Buffer) Flush(screen tcell.Screen) {
	screen.Clear()
	for idx, ok := range b.touched {
		if !ok {
			continue
		}
		c := b.cells[idx]
		screen.SetContent(idx%b.width, idx/b.width, c.Rune, nil, c.Style)
	}
	screen.Show()
}
