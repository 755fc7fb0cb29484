// Package config loads session settings from a TOML file and the environment
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Display DisplayConfig `toml:"display"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type DisplayConfig struct {
	Color string `toml:"color"` // "auto", "truecolor" or "256"
}

type GameConfig struct {
	Seed int64 `toml:"seed"` // 0 seeds from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty writes to DefaultLogFile
}

// Environment overrides, applied after the file
const (
	EnvColor    = "INVADERS_COLOR"
	EnvSeed     = "INVADERS_SEED"
	EnvLogLevel = "INVADERS_LOG_LEVEL"
	EnvLogFile  = "INVADERS_LOG_FILE"
)

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from INVADERS_* variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvColor); v != "" {
		c.Display.Color = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Game.Seed = seed
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// LogFile returns the configured log path or the default one
func (c LoggingConfig) LogFile() string {
	if c.File != "" {
		return c.File
	}
	return DefaultLogFile()
}

// DefaultLogFile is invaders.log in the temp directory; the terminal belongs to the game
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "invaders.log")
}
