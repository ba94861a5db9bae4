// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/colorrgb/color"
	"github.com/lixenwraith/colorrgb/terminal"
)

// Config holds environment-driven defaults for the colorrgb CLI
type Config struct {
	LogLevel  slog.Level `env:"COLORRGB_LOG_LEVEL" envDefault:"info"`
	LogDir    string     `env:"COLORRGB_LOG_DIR"`
	ColorMode string     `env:"COLORRGB_COLOR_MODE" envDefault:"auto"`
	Base      color.RGB  `env:"COLORRGB_BASE" envDefault:"#ffffff"`
	Percent   float64    `env:"COLORRGB_PERCENT" envDefault:"0.5"`
	Steps     int        `env:"COLORRGB_STEPS" envDefault:"8"`

	// Mode is ColorMode resolved against the running terminal
	Mode terminal.ColorMode
}

// MinSteps is the smallest useful gradient
const MinSteps = 2

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	mode, err := terminal.ParseColorMode(c.ColorMode)
	if err != nil {
		return fmt.Errorf("COLORRGB_COLOR_MODE: %w", err)
	}
	c.Mode = mode

	if c.Steps < MinSteps {
		return fmt.Errorf("COLORRGB_STEPS: %d is below %d", c.Steps, MinSteps)
	}
	return nil
}
