package systems

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// EnemyLaserSystem steps enemy lasers downward, each on its own cadence
type EnemyLaserSystem struct{}

func NewEnemyLaserSystem() *EnemyLaserSystem {
	return &EnemyLaserSystem{}
}

func (s *EnemyLaserSystem) Priority() int {
	return constants.PriorityEnemyLaser
}

// Update discards lasers whose next step would pass the bottom of the viewport
func (s *EnemyLaserSystem) Update(world *engine.World, tick uint64) {
	f := world.Formation
	kept := f.Lasers[:0]
	for _, l := range f.Lasers {
		if l.Due(tick) && !l.Advance(tick) {
			continue
		}
		kept = append(kept, l)
	}
	clear(f.Lasers[len(kept):])
	f.Lasers = kept
}
