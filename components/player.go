package components

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/sprite"
)

// Player is the ship: its shape, its health and at most one laser in flight
type Player struct {
	Health int
	Cells  []sprite.Cell
	Laser  *Laser
}

// NewPlayer creates a full-health player; the first cell is the firing tip
func NewPlayer(cells []sprite.Cell) *Player {
	return &Player{
		Health: constants.PlayerMaxHealth,
		Cells:  cells,
	}
}

// Alive reports whether health remains
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Tip returns the cell lasers are fired from
func (p *Player) Tip() sprite.Cell {
	return p.Cells[0]
}

// TopY returns the highest row the ship occupies
func (p *Player) TopY() uint16 {
	_, minY, _, _, _ := sprite.Bounds(p.Cells)
	return minY
}

// GoLeft moves one step left, the whole move is rejected if any cell would pass MinX
func (p *Player) GoLeft() bool {
	for _, c := range p.Cells {
		if int(c.X)-constants.PlayerStepX < int(constants.MinX) {
			return false
		}
	}
	p.Cells = sprite.Shift(p.Cells, -constants.PlayerStepX, 0)
	return true
}

// GoRight moves one step right, the whole move is rejected if any cell would pass MaxX
func (p *Player) GoRight() bool {
	for _, c := range p.Cells {
		if int(c.X)+constants.PlayerStepX > int(constants.MaxX) {
			return false
		}
	}
	p.Cells = sprite.Shift(p.Cells, constants.PlayerStepX, 0)
	return true
}

// Shoot spawns a laser above the tip unless one is already active
func (p *Player) Shoot(tpl sprite.Template, tick uint64) bool {
	if p.Laser != nil {
		return false
	}
	tip := p.Tip()
	if int(tip.Y)-constants.PlayerLaserLift < int(constants.MinY) {
		return false
	}
	p.Laser = NewLaser(tpl, tip.X, tip.Y-constants.PlayerLaserLift, DirectionUp, constants.PlayerLaserCadence, tick)
	return true
}

// Hit takes one point of health, never below zero
func (p *Player) Hit() {
	if p.Health > 0 {
		p.Health--
	}
}
