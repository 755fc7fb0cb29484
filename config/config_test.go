package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invaders.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad_Empty verifies an empty path yields the defaults
func TestLoad_Empty(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("Expected color auto, got %q", cfg.Display.Color)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("Expected info/console logging, got %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Game.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Game.Seed)
	}
}

// TestLoad_Partial verifies keys missing from the file keep their defaults
func TestLoad_Partial(t *testing.T) {
	path := writeConfig(t, `
[display]
color = "256"

[game]
seed = 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Color != "256" {
		t.Errorf("Expected color 256, got %q", cfg.Display.Color)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Game.Seed)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default level info, got %q", cfg.Logging.Level)
	}
}

// TestLoad_Errors verifies missing and malformed files are reported with the path
func TestLoad_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(missing); err == nil || !strings.Contains(err.Error(), missing) {
		t.Errorf("Expected read error naming %s, got %v", missing, err)
	}

	bad := writeConfig(t, "[display\ncolor = ")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

// TestApplyEnv verifies environment overrides and that malformed values are ignored
func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvColor, "truecolor")
	t.Setenv(EnvSeed, "not-a-number")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/x.log")

	cfg := Default()
	cfg.Game.Seed = 7
	cfg.ApplyEnv()

	if cfg.Display.Color != "truecolor" {
		t.Errorf("Expected color truecolor, got %q", cfg.Display.Color)
	}
	if cfg.Game.Seed != 7 {
		t.Errorf("Expected seed kept at 7, got %d", cfg.Game.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level debug, got %q", cfg.Logging.Level)
	}
	if got := cfg.Logging.LogFile(); got != "/tmp/x.log" {
		t.Errorf("Expected log file override, got %q", got)
	}
}

// TestLogFile_Default verifies the temp-dir fallback
func TestLogFile_Default(t *testing.T) {
	var lc LoggingConfig
	if got, want := lc.LogFile(), filepath.Join(os.TempDir(), "invaders.log"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
