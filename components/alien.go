package components

import "github.com/lixenwraith/invaders/sprite"

// Alien is a single invader; one hit destroys it
type Alien struct {
	Cells []sprite.Cell
}

// NewAlien wraps instantiated cells
func NewAlien(cells []sprite.Cell) Alien {
	return Alien{Cells: cells}
}

// Lead returns the cell enemy lasers leave from: the lowest row, nearest its horizontal centre
func (a Alien) Lead() sprite.Cell {
	minX, _, maxX, maxY, _ := sprite.Bounds(a.Cells)
	mid2 := int(minX) + int(maxX)

	var lead sprite.Cell
	best := -1
	for _, c := range a.Cells {
		if c.Y != maxY {
			continue
		}
		d := 2*int(c.X) - mid2
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			lead, best = c, d
		}
	}
	return lead
}

// Hits reports whether any laser cell shares a coordinate with the alien
func (a Alien) Hits(laser []sprite.Cell) bool {
	_, ok := sprite.Overlaps(laser, a.Cells)
	return ok
}

// AlienRow is an ordered set of aliens sharing one pattern and one step timer
type AlienRow struct {
	Aliens   []Alien
	LastStep uint64
}

// NewAlienRow builds a row from instantiated aliens
func NewAlienRow(aliens []Alien) *AlienRow {
	return &AlienRow{Aliens: aliens}
}

func (r *AlienRow) Len() int {
	return len(r.Aliens)
}

func (r *AlienRow) Empty() bool {
	return len(r.Aliens) == 0
}

// Shift moves every alien of the row by dx, dy
func (r *AlienRow) Shift(dx, dy int) {
	for i := range r.Aliens {
		r.Aliens[i].Cells = sprite.Shift(r.Aliens[i].Cells, dx, dy)
	}
}

// Remove deletes the alien at index i preserving order
func (r *AlienRow) Remove(i int) {
	r.Aliens = append(r.Aliens[:i], r.Aliens[i+1:]...)
}

// Cells returns all alien cells of the row
func (r *AlienRow) Cells() []sprite.Cell {
	var out []sprite.Cell
	for _, a := range r.Aliens {
		out = append(out, a.Cells...)
	}
	return out
}

// Due reports whether the row may step at tick under the given cadence
func (r *AlienRow) Due(tick, cadence uint64) bool {
	return tick >= r.LastStep+cadence
}
