// @focus: #components { formation }
package components

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/sprite"
)

// Heading is the shared horizontal travel of the formation, as a per-step column sign
type Heading int8

const (
	HeadingLeft  Heading = -1
	HeadingRight Heading = 1
)

// Formation is the alien grid moving as one unit with per-row delays
// Rows are ordered top to bottom; the bottom non-empty row leads every cycle
type Formation struct {
	Rows     []*AlienRow
	Heading  Heading
	Cadence  uint64 // ticks per step, derived from the alien count
	LastShot uint64
	Lasers   []*Laser
}

// NewFormation creates a right-moving formation with the cadence for its size
// Rows are staggered from tick zero
func NewFormation(rows []*AlienRow) *Formation {
	f := &Formation{
		Rows:    rows,
		Heading: HeadingRight,
	}
	f.Cadence = CadenceFor(f.Count())
	f.Schedule(0)
	return f
}

// CadenceFor looks up the speed tier for the given number of aliens
func CadenceFor(count int) uint64 {
	for _, tier := range constants.SpeedTiers {
		if count >= tier.MinAliens {
			return tier.Cadence
		}
	}
	return constants.SpeedTiers[len(constants.SpeedTiers)-1].Cadence
}

// Count returns the number of aliens alive
func (f *Formation) Count() int {
	n := 0
	for _, r := range f.Rows {
		n += r.Len()
	}
	return n
}

// Recalculate refreshes the cadence from the alien count, returns true if it changed
func (f *Formation) Recalculate() bool {
	c := CadenceFor(f.Count())
	if c == f.Cadence {
		return false
	}
	f.Cadence = c
	return true
}

// Leader returns the index of the bottom non-empty row, -1 when all rows are empty
func (f *Formation) Leader() int {
	for i := len(f.Rows) - 1; i >= 0; i-- {
		if !f.Rows[i].Empty() {
			return i
		}
	}
	return -1
}

// Schedule staggers non-empty rows across one cadence, bottom row first
// A row ranked k from the bottom gets LastStep = tick + k*Cadence/n
func (f *Formation) Schedule(tick uint64) {
	n := 0
	for _, r := range f.Rows {
		if !r.Empty() {
			n++
		}
	}
	if n == 0 {
		return
	}

	k := uint64(0)
	for i := len(f.Rows) - 1; i >= 0; i-- {
		r := f.Rows[i]
		if r.Empty() {
			continue
		}
		r.LastStep = tick + k*f.Cadence/uint64(n)
		k++
	}
}

// EdgeAhead reports whether any alien would cross the viewport edge on its next step
func (f *Formation) EdgeAhead() bool {
	minX, maxX, ok := f.extent()
	if !ok {
		return false
	}
	if f.Heading == HeadingRight {
		return int(maxX)+constants.AlienStepX > int(constants.MaxX)
	}
	return int(minX)-constants.AlienStepX < int(constants.MinX)
}

// RowBlocked reports whether the row's own next step would cross the edge
func (f *Formation) RowBlocked(r *AlienRow) bool {
	minX, _, maxX, _, ok := sprite.Bounds(r.Cells())
	if !ok {
		return true
	}
	if f.Heading == HeadingRight {
		return int(maxX)+constants.AlienStepX > int(constants.MaxX)
	}
	return int(minX)-constants.AlienStepX < int(constants.MinX)
}

// Reverse flips the heading and descends every non-empty row once, then reschedules
func (f *Formation) Reverse(tick uint64) {
	f.Heading = -f.Heading
	for _, r := range f.Rows {
		if r.Empty() {
			continue
		}
		r.Shift(0, constants.AlienStepY)
	}
	f.Schedule(tick)
}

// StepRow moves a row one step along the heading
func (f *Formation) StepRow(r *AlienRow, tick uint64) {
	r.Shift(int(f.Heading)*constants.AlienStepX, 0)
	r.LastStep = tick
}

// Remove deletes an alien and recomputes the cadence, returns true if the cadence changed
func (f *Formation) Remove(row, idx int) bool {
	f.Rows[row].Remove(idx)
	return f.Recalculate()
}

// Aliens visits every alien with its row and index
func (f *Formation) Aliens(fn func(row, idx int, a Alien)) {
	for ri, r := range f.Rows {
		for ai, a := range r.Aliens {
			fn(ri, ai, a)
		}
	}
}

// LowestY returns the bottom row occupied by any alien
func (f *Formation) LowestY() (uint16, bool) {
	var lowest uint16
	found := false
	for _, r := range f.Rows {
		_, _, _, maxY, ok := sprite.Bounds(r.Cells())
		if ok && (!found || maxY > lowest) {
			lowest, found = maxY, true
		}
	}
	return lowest, found
}

// Cells returns every alien cell, rows top to bottom
func (f *Formation) Cells() []sprite.Cell {
	var out []sprite.Cell
	for _, r := range f.Rows {
		out = append(out, r.Cells()...)
	}
	return out
}

func (f *Formation) extent() (minX, maxX uint16, ok bool) {
	for _, r := range f.Rows {
		rMin, _, rMax, _, rok := sprite.Bounds(r.Cells())
		if !rok {
			continue
		}
		if !ok {
			minX, maxX, ok = rMin, rMax, true
			continue
		}
		minX = min(minX, rMin)
		maxX = max(maxX, rMax)
	}
	return minX, maxX, ok
}
