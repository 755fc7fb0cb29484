package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/status"
)

// GameDeps carries the collaborators of a Game
type GameDeps struct {
	Terminal Terminal
	Input    Input
	Painter  Painter
	Clock    Clock
	Systems  []System
	Pack     *asset.Pack
	Keys     *input.KeyTable
	Logger   *zap.Logger
	Stats    *status.Registry
}

// Game owns the fixed-timestep loop and the top-level state machine
// All methods run on the caller's goroutine
type Game struct {
	term    Terminal
	input   Input
	painter Painter
	clock   Clock
	systems []System
	pack    *asset.Pack
	keys    *input.KeyTable
	log     *zap.Logger
	stats   *status.Registry

	state   State
	painted bool // menu message already on screen
	world   *World

	tick     uint64
	lag      time.Duration
	lastTick time.Time
}

// NewGame creates a game in StateNewGame; systems are ordered by priority
func NewGame(deps GameDeps) *Game {
	systems := append([]System(nil), deps.Systems...)
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Priority() < systems[j].Priority()
	})

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	stats := deps.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}
	keys := deps.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	return &Game{
		term:    deps.Terminal,
		input:   deps.Input,
		painter: deps.Painter,
		clock:   deps.Clock,
		systems: systems,
		pack:    deps.Pack,
		keys:    keys,
		log:     log,
		stats:   stats,
		state:   StateNewGame,
	}
}

// State returns the current top-level state
func (g *Game) State() State {
	return g.state
}

// World returns the current life's world, nil outside StatePlaying
func (g *Game) World() *World {
	return g.world
}

// Tick returns the number of ticks simulated in the current life
func (g *Game) Tick() uint64 {
	return g.tick
}

// Run prepares the terminal, loops until quit or error, then restores the terminal
// A restore failure is logged and joined to the returned error
func (g *Game) Run() (err error) {
	if err := g.term.Prepare(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		if rerr := g.term.Restore(); rerr != nil {
			g.log.Error("terminal restore failed", zap.Error(rerr))
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", rerr))
		}
	}()

	g.log.Info("session started")
	for {
		quit, err := g.Step()
		if err != nil {
			g.log.Error("session aborted", zap.Stringer("state", g.state), zap.Error(err))
			return err
		}
		if quit {
			g.log.Info("session ended", zap.Stringer("state", g.state))
			return nil
		}
	}
}

// Step runs one loop iteration: one bounded input poll, then state handling
func (g *Game) Step() (quit bool, err error) {
	if g.state != StatePlaying {
		return g.stepMenu()
	}
	return g.stepPlaying()
}

// stepMenu shows the state message and waits for confirm or quit
func (g *Game) stepMenu() (bool, error) {
	if !g.painted {
		if err := g.painter.PaintMessage(g.state.Message()); err != nil {
			return false, fmt.Errorf("paint message: %w", err)
		}
		g.painted = true
	}

	intent, err := g.readIntent()
	if err != nil {
		return false, err
	}
	switch intent {
	case input.IntentQuit:
		return true, nil
	case input.IntentConfirm:
		if err := g.restart(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// stepPlaying applies input, checks the outcome, then advances simulation by the accumulated lag
func (g *Game) stepPlaying() (bool, error) {
	intent, err := g.readIntent()
	if err != nil {
		return false, err
	}

	w := g.world
	switch intent {
	case input.IntentQuit:
		return true, nil
	case input.IntentMoveLeft:
		w.Player.GoLeft()
	case input.IntentMoveRight:
		w.Player.GoRight()
	case input.IntentFire:
		if w.PlayerShoot(g.tick) {
			g.stats.Counter(status.PlayerShots).Add(1)
		}
	}

	switch w.Outcome() {
	case OutcomeWon:
		g.finish(StateWon)
		return false, nil
	case OutcomeLost:
		g.finish(StateLost)
		return false, nil
	}

	return false, g.advance()
}

// readIntent polls once and resolves at most one key
func (g *Game) readIntent() (input.Intent, error) {
	ready, err := g.input.Poll(constants.TickDuration)
	if err != nil {
		return input.IntentNone, fmt.Errorf("poll input: %w", err)
	}
	if !ready {
		return input.IntentNone, nil
	}
	key, err := g.input.ReadKey()
	if err != nil {
		return input.IntentNone, fmt.Errorf("read key: %w", err)
	}
	return g.keys.Resolve(key), nil
}

// advance consumes whole ticks from the lag accumulator, painting after the last one
func (g *Game) advance() error {
	now := g.clock.Now()
	g.lag += now.Sub(g.lastTick)
	g.lastTick = now

	ticks := g.stats.Counter(status.Ticks)
	for g.lag >= constants.TickDuration {
		g.lag -= constants.TickDuration
		g.tick++
		for _, s := range g.systems {
			s.Update(g.world, g.tick)
		}
		ticks.Add(1)

		if g.lag < constants.TickDuration {
			if err := g.painter.Paint(g.world.Cells(), g.world.Status()); err != nil {
				return fmt.Errorf("paint frame: %w", err)
			}
			g.stats.Counter(status.Frames).Add(1)
		}
	}
	return nil
}

// restart builds a fresh world and enters StatePlaying
func (g *Game) restart() error {
	world, err := NewWorld(g.pack)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	g.world = world
	g.tick = 0
	g.lag = 0
	g.lastTick = g.clock.Now()
	g.painted = false
	g.stats.Counter(status.Lives).Add(1)

	g.log.Info("state changed",
		zap.Stringer("from", g.state),
		zap.Stringer("to", StatePlaying),
		zap.Int("aliens", world.Formation.Count()))
	g.state = StatePlaying
	return nil
}

// finish discards the world and enters a terminal state of the life
func (g *Game) finish(next State) {
	g.log.Info("state changed",
		zap.Stringer("from", g.state),
		zap.Stringer("to", next),
		zap.Uint64("tick", g.tick),
		zap.Int("health", g.world.Player.Health),
		zap.Int("aliens", g.world.Formation.Count()))
	g.state = next
	g.world = nil
	g.painted = false
}
