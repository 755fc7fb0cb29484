package components

import "github.com/lixenwraith/invaders/sprite"

// Bunker is a shield eroded cell by cell; an empty bunker stays in place, inert
type Bunker struct {
	Cells []sprite.Cell
}

// NewBunker wraps instantiated cells
func NewBunker(cells []sprite.Cell) *Bunker {
	return &Bunker{Cells: cells}
}

// Strike returns the first laser cell sharing a coordinate with the bunker
func (b *Bunker) Strike(laser []sprite.Cell) (sprite.Cell, bool) {
	return sprite.Overlaps(laser, b.Cells)
}

// Erode removes the cells at (x-1,y), (x,y) and (x+1,y) around the struck cell
// Returns the number of cells removed
func (b *Bunker) Erode(at sprite.Cell) int {
	kept := b.Cells[:0]
	removed := 0
	for _, c := range b.Cells {
		if c.Y == at.Y && int(c.X) >= int(at.X)-1 && int(c.X) <= int(at.X)+1 {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	b.Cells = kept
	return removed
}

// Empty reports whether the bunker has been fully eroded
func (b *Bunker) Empty() bool {
	return len(b.Cells) == 0
}
