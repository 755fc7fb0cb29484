package engine

import (
	"fmt"

	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/sprite"
)

// Outcome is the end condition of a life as seen after a tick
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// World is the state of one life: the ship, the formation and the bunkers
// Exclusively owned by the game loop; replaced wholesale on restart
type World struct {
	Player    *components.Player
	Formation *components.Formation
	Bunkers   []*components.Bunker

	// Laser is the shape shared by player and enemy lasers
	Laser sprite.Template
}

// NewWorld builds a fresh world from the pack's templates and initial layout
func NewWorld(pack *asset.Pack) (*World, error) {
	layout := pack.Layout

	rows := make([]*components.AlienRow, 0, len(layout.Rows))
	for i, row := range layout.Rows {
		tpl, ok := pack.Sprite(row.Sprite)
		if !ok {
			return nil, fmt.Errorf("row %d: %w: unknown sprite %q", i, asset.ErrLayout, row.Sprite)
		}
		aliens := components.Spawn(tpl, row.Origins(), components.NewAlien)
		rows = append(rows, components.NewAlienRow(aliens))
	}

	if _, ok := pack.Sprite(layout.Player.Sprite); !ok {
		return nil, fmt.Errorf("player: %w: unknown sprite %q", asset.ErrLayout, layout.Player.Sprite)
	}
	if _, ok := pack.Sprite(layout.Bunkers.Sprite); !ok {
		return nil, fmt.Errorf("bunkers: %w: unknown sprite %q", asset.ErrLayout, layout.Bunkers.Sprite)
	}
	laser, ok := pack.Sprite(layout.Laser)
	if !ok {
		return nil, fmt.Errorf("laser: %w: unknown sprite %q", asset.ErrLayout, layout.Laser)
	}

	return &World{
		Player:    components.NewPlayer(pack.Player().At(layout.Player.X, layout.Player.Y)),
		Formation: components.NewFormation(rows),
		Bunkers:   components.Spawn(pack.Bunker(), layout.Bunkers.Origins, components.NewBunker),
		Laser:     laser,
	}, nil
}

// Invaded reports whether any alien cell has reached the player's row
func (w *World) Invaded() bool {
	lowest, ok := w.Formation.LowestY()
	return ok && lowest >= w.Player.TopY()
}

// Outcome checks loss before victory
func (w *World) Outcome() Outcome {
	if !w.Player.Alive() || w.Invaded() {
		return OutcomeLost
	}
	if w.Formation.Count() == 0 {
		return OutcomeWon
	}
	return OutcomeNone
}

// PlayerShoot fires the player's laser at tick, returns false if one is already in flight
func (w *World) PlayerShoot(tick uint64) bool {
	return w.Player.Shoot(w.Laser, tick)
}

// Cells returns the visible cell set in paint order
// The ship, its laser and the bunkers carry the health colour
func (w *World) Cells() []render.Cell {
	tint := render.HealthColor(w.Player.Health)

	out := render.Tinted(w.Player.Cells, tint)
	if w.Player.Laser != nil {
		out = append(out, render.Tinted(w.Player.Laser.Cells, tint)...)
	}
	out = append(out, render.Plain(w.Formation.Cells())...)
	for _, l := range w.Formation.Lasers {
		out = append(out, render.Plain(l.Cells)...)
	}
	for _, b := range w.Bunkers {
		out = append(out, render.Tinted(b.Cells, tint)...)
	}
	return out
}

// Status returns the status line painted under the viewport
func (w *World) Status() string {
	return fmt.Sprintf("HEALTH: %d  ALIENS: %d", w.Player.Health, w.Formation.Count())
}
