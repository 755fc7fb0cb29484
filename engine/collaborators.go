package engine

import (
	"time"

	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// Terminal switches the terminal in and out of game mode
type Terminal interface {
	Prepare() error
	Restore() error
}

// Input delivers key events; Poll is the loop's only suspension point
type Input interface {
	Poll(timeout time.Duration) (bool, error)
	ReadKey() (input.Key, error)
}

// Painter draws frames and full-screen messages
type Painter interface {
	Paint(cells []render.Cell, status string) error
	PaintMessage(msg string) error
}

// Clock supplies wall time to the lag accumulator
type Clock interface {
	Now() time.Time
}
