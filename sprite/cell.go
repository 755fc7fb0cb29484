package sprite

// Cell is a single glyph at a viewport position
// Equality is by all three fields; collision checks use SamePos
type Cell struct {
	X     uint16
	Y     uint16
	Glyph rune
}

// SamePos reports whether both cells occupy the same coordinate
func (c Cell) SamePos(o Cell) bool {
	return c.X == o.X && c.Y == o.Y
}

// Shift returns a fresh slice with every cell moved by dx, dy
// Coordinates are floored at zero; callers reject out-of-bounds moves before shifting
func Shift(cells []Cell, dx, dy int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{
			X:     offset(c.X, dx),
			Y:     offset(c.Y, dy),
			Glyph: c.Glyph,
		}
	}
	return out
}

func offset(v uint16, d int) uint16 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	return uint16(n)
}

// Bounds returns the inclusive bounding box of cells, ok is false for an empty slice
func Bounds(cells []Cell) (minX, minY, maxX, maxY uint16, ok bool) {
	if len(cells) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = cells[0].X, cells[0].Y
	maxX, maxY = minX, minY
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Overlaps returns the first cell of a sharing a coordinate with any cell of b
func Overlaps(a, b []Cell) (Cell, bool) {
	for _, ca := range a {
		for _, cb := range b {
			if ca.SamePos(cb) {
				return ca, true
			}
		}
	}
	return Cell{}, false
}
