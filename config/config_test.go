package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/lixenwraith/colorrgb/color"
	"github.com/lixenwraith/colorrgb/terminal"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"COLORRGB_LOG_LEVEL", "COLORRGB_LOG_DIR", "COLORRGB_COLOR_MODE",
		"COLORRGB_BASE", "COLORRGB_PERCENT", "COLORRGB_STEPS",
	} {
		// Setenv registers the restore, Unsetenv makes the variable absent
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLORRGB_COLOR_MODE", "256")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel mismatch: got %v", cfg.LogLevel)
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir mismatch: got %q", cfg.LogDir)
	}
	if !cfg.Base.Equal(color.White()) {
		t.Errorf("Base mismatch: got %s", cfg.Base)
	}
	if cfg.Percent != 0.5 {
		t.Errorf("Percent mismatch: got %f", cfg.Percent)
	}
	if cfg.Steps != 8 {
		t.Errorf("Steps mismatch: got %d", cfg.Steps)
	}
	if cfg.Mode != terminal.ColorMode256 {
		t.Errorf("Mode mismatch: got %s", cfg.Mode)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLORRGB_LOG_LEVEL", "debug")
	t.Setenv("COLORRGB_LOG_DIR", "/tmp/colorrgb")
	t.Setenv("COLORRGB_COLOR_MODE", "true")
	t.Setenv("COLORRGB_BASE", "#800080")
	t.Setenv("COLORRGB_PERCENT", "0.25")
	t.Setenv("COLORRGB_STEPS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel mismatch: got %v", cfg.LogLevel)
	}
	if cfg.LogDir != "/tmp/colorrgb" {
		t.Errorf("LogDir mismatch: got %q", cfg.LogDir)
	}
	if !cfg.Base.Equal(color.Purple()) {
		t.Errorf("Base mismatch: got %s", cfg.Base)
	}
	if cfg.Percent != 0.25 {
		t.Errorf("Percent mismatch: got %f", cfg.Percent)
	}
	if cfg.Steps != 4 {
		t.Errorf("Steps mismatch: got %d", cfg.Steps)
	}
	if cfg.Mode != terminal.ColorModeTrueColor {
		t.Errorf("Mode mismatch: got %s", cfg.Mode)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Bad base", "COLORRGB_BASE", "white"},
		{"Bad level", "COLORRGB_LOG_LEVEL", "loud"},
		{"Bad mode", "COLORRGB_COLOR_MODE", "16"},
		{"Too few steps", "COLORRGB_STEPS", "1"},
		{"Steps not a number", "COLORRGB_STEPS", "many"},
		{"Percent not a number", "COLORRGB_PERCENT", "half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("COLORRGB_COLOR_MODE", "256")
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}
