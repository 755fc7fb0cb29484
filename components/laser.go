package components

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/sprite"
)

// Direction is the vertical travel of a laser, as a per-step row delta
type Direction int8

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)

// Laser is a two-cell projectile stepping vertically on its own cadence
type Laser struct {
	Cells     []sprite.Cell
	Direction Direction
	Cadence   uint64 // ticks between steps
	LastStep  uint64 // tick of the last step or of the spawn
}

// NewLaser instantiates tpl with its origin at x, y
func NewLaser(tpl sprite.Template, x, y uint16, dir Direction, cadence, tick uint64) *Laser {
	return &Laser{
		Cells:     tpl.At(x, y),
		Direction: dir,
		Cadence:   cadence,
		LastStep:  tick,
	}
}

// Due reports whether the cadence has elapsed since the last step
func (l *Laser) Due(tick uint64) bool {
	return tick >= l.LastStep+l.Cadence
}

// Advance moves the laser one row in its direction
// Returns false without moving when the step would leave the vertical viewport
func (l *Laser) Advance(tick uint64) bool {
	for _, c := range l.Cells {
		y := int(c.Y) + int(l.Direction)
		if y < int(constants.MinY) || y > int(constants.MaxY) {
			return false
		}
	}
	l.Cells = sprite.Shift(l.Cells, 0, int(l.Direction))
	l.LastStep = tick
	return true
}
