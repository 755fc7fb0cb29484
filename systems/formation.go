// @focus: #systems { formation }
package systems

import (
	"sort"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/sprite"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/vmath"
)

// Rand is the random source for enemy fire rolls
type Rand interface {
	Float64() float64
}

// FormationSystem moves the alien rows, reverses at the edges and fires enemy lasers
type FormationSystem struct {
	rand  Rand
	log   *zap.Logger
	shots *atomic.Int64
}

func NewFormationSystem(rand Rand, log *zap.Logger, stats *status.Registry) *FormationSystem {
	return &FormationSystem{
		rand:  rand,
		log:   log,
		shots: stats.Counter(status.EnemyShots),
	}
}

func (s *FormationSystem) Priority() int {
	return constants.PriorityFormation
}

// Update runs movement then fire selection
func (s *FormationSystem) Update(world *engine.World, tick uint64) {
	s.move(world.Formation, tick)
	s.fire(world, tick)
}

// move reverses when the leading row is due at an edge, otherwise steps every due row
// No horizontal step happens on the tick of a reversal
func (s *FormationSystem) move(f *components.Formation, tick uint64) {
	leader := f.Leader()
	if leader < 0 {
		return
	}

	if f.Rows[leader].Due(tick, f.Cadence) && f.EdgeAhead() {
		f.Reverse(tick)
		lowest, _ := f.LowestY()
		s.log.Debug("formation reversed",
			zap.Uint64("tick", tick),
			zap.Int8("heading", int8(f.Heading)),
			zap.Uint16("lowest", lowest))
		return
	}

	for _, r := range f.Rows {
		if r.Empty() || !r.Due(tick, f.Cadence) {
			continue
		}
		// Trailing rows at the edge wait for the leader's reversal
		if f.RowBlocked(r) {
			continue
		}
		f.StepRow(r, tick)
	}
}

type fireCandidate struct {
	lead sprite.Cell
	dist int
}

// fire picks among the aliens nearest the player; every candidate may decline, so an eligible tick can pass without a shot
func (s *FormationSystem) fire(world *engine.World, tick uint64) {
	f := world.Formation
	if tick < f.LastShot+constants.EnemyFireInterval || len(f.Lasers) >= constants.MaxEnemyLasers {
		return
	}

	tip := world.Player.Tip()
	candidates := make([]fireCandidate, 0, f.Count())
	f.Aliens(func(_, _ int, a components.Alien) {
		lead := a.Lead()
		candidates = append(candidates, fireCandidate{
			lead: lead,
			dist: vmath.DistSq(int(lead.X), int(lead.Y), int(tip.X), int(tip.Y)),
		})
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > constants.MaxEnemyLasers {
		candidates = candidates[:constants.MaxEnemyLasers]
	}

	for _, c := range candidates {
		if s.rand.Float64() >= constants.EnemyFireChance {
			continue
		}
		laser := components.NewLaser(world.Laser, c.lead.X, c.lead.Y+1,
			components.DirectionDown, constants.EnemyLaserCadence, tick)
		f.Lasers = append(f.Lasers, laser)
		f.LastShot = tick
		s.shots.Add(1)
		return
	}
}
