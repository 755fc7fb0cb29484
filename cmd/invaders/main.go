package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/systems"
	"github.com/lixenwraith/invaders/terminal"
	"github.com/lixenwraith/invaders/vmath"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print after reset so it stays visible
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if *colorModeFlag != "" {
		cfg.Display.Color = *colorModeFlag
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}

	if !terminal.IsInteractive() {
		return errors.New("stdin and stdout must be a terminal")
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	pack, err := asset.Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	term, err := terminal.New(colorMode)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stats := status.NewRegistry()

	game := engine.NewGame(engine.GameDeps{
		Terminal: term,
		Input:    term,
		Painter:  render.NewTerminalRenderer(term.Screen()),
		Clock:    engine.NewTimeProvider(),
		Systems: []engine.System{
			systems.NewPlayerLaserSystem(log),
			systems.NewFormationSystem(vmath.NewFastRand(uint64(seed)), log, stats),
			systems.NewEnemyLaserSystem(),
			systems.NewCollisionSystem(log, stats),
		},
		Pack:   pack,
		Keys:   input.DefaultKeyTable(),
		Logger: log,
		Stats:  stats,
	})

	log.Info("starting",
		zap.Int64("seed", seed),
		zap.Uint8("color_mode", uint8(term.ColorMode())),
		zap.Int("sprites", len(pack.Sprites)))

	err = game.Run()
	logStats(log, stats)
	return err
}
