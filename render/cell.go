package render

import "github.com/lixenwraith/invaders/sprite"

// Cell is a glyph-cell with an optional colour
type Cell struct {
	sprite.Cell
	Color   RGB
	Colored bool // false paints with the terminal default foreground
}

// Plain wraps cells without colour
func Plain(cells []sprite.Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Cell: c}
	}
	return out
}

// Tinted wraps cells with a colour
func Tinted(cells []sprite.Cell, color RGB) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Cell: c, Color: color, Colored: true}
	}
	return out
}
