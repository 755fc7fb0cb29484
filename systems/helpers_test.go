package systems

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/sprite"
	"github.com/lixenwraith/invaders/status"
)

var (
	shipTemplate = sprite.NewTemplate("ship", []sprite.Cell{
		{X: 1, Y: 0, Glyph: '^'},
		{X: 0, Y: 1, Glyph: '/'},
		{X: 1, Y: 1, Glyph: '='},
		{X: 2, Y: 1, Glyph: '\\'},
	})
	laserTemplate = sprite.NewTemplate("laser", []sprite.Cell{
		{X: 0, Y: 0, Glyph: '|'},
		{X: 0, Y: 1, Glyph: '|'},
	})
	alienTemplate = sprite.NewTemplate("alien", []sprite.Cell{
		{X: 0, Y: 0, Glyph: '<'},
		{X: 1, Y: 0, Glyph: 'o'},
		{X: 2, Y: 0, Glyph: '>'},
	})
	bunkerTemplate = sprite.NewTemplate("bunker", []sprite.Cell{
		{X: 0, Y: 0, Glyph: '#'},
		{X: 1, Y: 0, Glyph: '#'},
		{X: 2, Y: 0, Glyph: '#'},
		{X: 3, Y: 0, Glyph: '#'},
		{X: 4, Y: 0, Glyph: '#'},
	})
)

// seqRand replays a fixed sequence of rolls and counts calls
type seqRand struct {
	rolls []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.rolls[r.calls%len(r.rolls)]
	r.calls++
	return v
}

// testWorld builds a world with the ship at ship, one alien row per entry of rows and bunkers at the given origins
func testWorld(ship asset.Point, rows [][]asset.Point, bunkers []asset.Point) *engine.World {
	alienRows := make([]*components.AlienRow, len(rows))
	for i, origins := range rows {
		alienRows[i] = components.NewAlienRow(components.Spawn(alienTemplate, origins, components.NewAlien))
	}
	return &engine.World{
		Player:    components.NewPlayer(shipTemplate.At(ship.X, ship.Y)),
		Formation: components.NewFormation(alienRows),
		Bunkers:   components.Spawn(bunkerTemplate, bunkers, components.NewBunker),
		Laser:     laserTemplate,
	}
}

func newTestCollision(t *testing.T) (*CollisionSystem, *status.Registry) {
	stats := status.NewRegistry()
	return NewCollisionSystem(zaptest.NewLogger(t), stats), stats
}
