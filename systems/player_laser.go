package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// PlayerLaserSystem steps the player's laser on its cadence
type PlayerLaserSystem struct {
	log *zap.Logger
}

func NewPlayerLaserSystem(log *zap.Logger) *PlayerLaserSystem {
	return &PlayerLaserSystem{log: log}
}

func (s *PlayerLaserSystem) Priority() int {
	return constants.PriorityPlayerLaser
}

// Update destroys the laser instead of moving it past the top of the viewport
func (s *PlayerLaserSystem) Update(world *engine.World, tick uint64) {
	l := world.Player.Laser
	if l == nil || !l.Due(tick) {
		return
	}
	if !l.Advance(tick) {
		world.Player.Laser = nil
		s.log.Debug("player laser left viewport", zap.Uint64("tick", tick))
	}
}
