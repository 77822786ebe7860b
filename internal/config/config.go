// Package config loads zoomdemo settings from ZOOMDEMO_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "ZOOMDEMO"

// Config holds the demo settings. Defaults are in the struct tags.
type Config struct {
	Output   string  `envconfig:"OUTPUT" default:"zoomdemo.png"`
	Backend  string  `envconfig:"BACKEND" default:"png"`
	Width    float64 `envconfig:"WIDTH" default:"8"`  // inches
	Height   float64 `envconfig:"HEIGHT" default:"6"` // inches
	DPI      float64 `envconfig:"DPI" default:"100"`
	Zoom     float64 `envconfig:"ZOOM" default:"4"`
	Points   int     `envconfig:"POINTS" default:"400"`
	Seed     int64   `envconfig:"SEED" default:"1"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the ZOOMDEMO_* environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the renderer cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: figure size %vx%v must be positive", c.Width, c.Height)
	case c.DPI <= 0:
		return fmt.Errorf("config: dpi %v must be positive", c.DPI)
	case c.Zoom <= 0:
		return fmt.Errorf("config: zoom %v must be positive", c.Zoom)
	case c.Points < 0:
		return fmt.Errorf("config: points %d must not be negative", c.Points)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
