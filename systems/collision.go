// @focus: #systems { collision }
package systems

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/sprite"
	"github.com/lixenwraith/invaders/status"
)

// CollisionSystem resolves laser hits after all movement of the tick
// Tests are exact coordinate equality; a laser that skips past a target is not detected
type CollisionSystem struct {
	log *zap.Logger

	kills      *atomic.Int64
	playerHits *atomic.Int64
	bunkerHits *atomic.Int64
}

func NewCollisionSystem(log *zap.Logger, stats *status.Registry) *CollisionSystem {
	return &CollisionSystem{
		log:        log,
		kills:      stats.Counter(status.Kills),
		playerHits: stats.Counter(status.PlayerHits),
		bunkerHits: stats.Counter(status.BunkerHits),
	}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(world *engine.World, tick uint64) {
	s.resolvePlayerLaser(world, tick)
	s.resolveEnemyLasers(world, tick)
}

// resolvePlayerLaser checks bunkers first, then aliens from the rearmost row forward
func (s *CollisionSystem) resolvePlayerLaser(world *engine.World, tick uint64) {
	l := world.Player.Laser
	if l == nil {
		return
	}

	if s.strikeBunkers(world.Bunkers, l) {
		world.Player.Laser = nil
		return
	}

	f := world.Formation
	for ri := len(f.Rows) - 1; ri >= 0; ri-- {
		for ai, a := range f.Rows[ri].Aliens {
			if !a.Hits(l.Cells) {
				continue
			}
			changed := f.Remove(ri, ai)
			world.Player.Laser = nil
			s.kills.Add(1)
			if changed {
				s.log.Debug("formation cadence changed",
					zap.Uint64("tick", tick),
					zap.Int("aliens", f.Count()),
					zap.Uint64("cadence", f.Cadence))
			}
			return
		}
	}
}

// resolveEnemyLasers removes every enemy laser that hit a bunker or the player
func (s *CollisionSystem) resolveEnemyLasers(world *engine.World, tick uint64) {
	f := world.Formation
	kept := f.Lasers[:0]
	for _, l := range f.Lasers {
		if s.strikeBunkers(world.Bunkers, l) {
			continue
		}
		if _, ok := sprite.Overlaps(l.Cells, world.Player.Cells); ok {
			world.Player.Hit()
			s.playerHits.Add(1)
			s.log.Debug("player hit", zap.Uint64("tick", tick), zap.Int("health", world.Player.Health))
			continue
		}
		kept = append(kept, l)
	}
	clear(f.Lasers[len(kept):])
	f.Lasers = kept
}

// strikeBunkers erodes the first bunker the laser touches, in bunker order
func (s *CollisionSystem) strikeBunkers(bunkers []*components.Bunker, l *components.Laser) bool {
	for _, b := range bunkers {
		at, ok := b.Strike(l.Cells)
		if !ok {
			continue
		}
		b.Erode(at)
		s.bunkerHits.Add(1)
		return true
	}
	return false
}
