package components

import (
	"testing"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/sprite"
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
)

// TestPlayer_GoLeftAtBound verifies a move past MinX is rejected, not clamped
func TestPlayer_GoLeftAtBound(t *testing.T) {
	p := NewPlayer(shipTemplate.At(constants.MinX, 30))
	before := append([]sprite.Cell(nil), p.Cells...)

	if p.GoLeft() {
		t.Fatal("Expected GoLeft to be rejected at the left bound")
	}
	for i := range before {
		if p.Cells[i] != before[i] {
			t.Errorf("Cell %d moved: expected %+v, got %+v", i, before[i], p.Cells[i])
		}
	}
}

// TestPlayer_GoLeftPartialRejected verifies a move that would only partly fit is rejected in full
func TestPlayer_GoLeftPartialRejected(t *testing.T) {
	p := NewPlayer(shipTemplate.At(constants.MinX+1, 30))
	if p.GoLeft() {
		t.Fatal("Expected GoLeft to be rejected when the step overshoots MinX")
	}
	if p.Cells[1].X != constants.MinX+1 {
		t.Errorf("Expected X %d, got %d", constants.MinX+1, p.Cells[1].X)
	}
}

// TestPlayer_Moves verifies both directions shift by PlayerStepX
func TestPlayer_Moves(t *testing.T) {
	p := NewPlayer(shipTemplate.At(50, 30))

	if !p.GoRight() {
		t.Fatal("Expected GoRight to succeed")
	}
	if p.Tip().X != 51+constants.PlayerStepX {
		t.Errorf("Expected tip X %d, got %d", 51+constants.PlayerStepX, p.Tip().X)
	}
	if !p.GoLeft() {
		t.Fatal("Expected GoLeft to succeed")
	}
	if p.Tip().X != 51 {
		t.Errorf("Expected tip X 51, got %d", p.Tip().X)
	}
}

// TestPlayer_GoRightAtBound verifies a move past MaxX is rejected
func TestPlayer_GoRightAtBound(t *testing.T) {
	p := NewPlayer(shipTemplate.At(constants.MaxX-2, 30))
	if p.GoRight() {
		t.Fatal("Expected GoRight to be rejected at the right bound")
	}
	if p.Cells[3].X != constants.MaxX {
		t.Errorf("Expected right edge at %d, got %d", constants.MaxX, p.Cells[3].X)
	}
}

// TestPlayer_ShootSingleLaser verifies at most one laser exists
func TestPlayer_ShootSingleLaser(t *testing.T) {
	p := NewPlayer(shipTemplate.At(50, 30))

	if !p.Shoot(laserTemplate, 7) {
		t.Fatal("Expected first shot to fire")
	}
	first := p.Laser
	if p.Shoot(laserTemplate, 8) {
		t.Error("Expected second shot to be a no-op")
	}
	if p.Laser != first {
		t.Error("Expected the active laser to be kept")
	}

	tip := p.Tip()
	want := []sprite.Cell{{X: tip.X, Y: tip.Y - 2, Glyph: '|'}, {X: tip.X, Y: tip.Y - 1, Glyph: '|'}}
	for i := range want {
		if first.Cells[i] != want[i] {
			t.Errorf("Laser cell %d: expected %+v, got %+v", i, want[i], first.Cells[i])
		}
	}
	if first.Direction != DirectionUp || first.Cadence != constants.PlayerLaserCadence || first.LastStep != 7 {
		t.Errorf("Unexpected laser state %+v", first)
	}
}

// TestPlayer_Hit verifies health floors at zero
func TestPlayer_Hit(t *testing.T) {
	p := NewPlayer(shipTemplate.At(50, 30))
	if p.Health != constants.PlayerMaxHealth {
		t.Fatalf("Expected health %d, got %d", constants.PlayerMaxHealth, p.Health)
	}
	for i := 0; i < 5; i++ {
		p.Hit()
	}
	if p.Health != 0 || p.Alive() {
		t.Errorf("Expected dead player with health 0, got %d", p.Health)
	}
	if p.TopY() != 30 {
		t.Errorf("Expected top row 30, got %d", p.TopY())
	}
}
