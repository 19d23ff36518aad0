package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives the simulation. Every field has a default so an empty file
// (or no file at all) runs a sensible demo.
type Config struct {
	World struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"world"`
	Rows          int           `yaml:"rows"`
	Cols          int           `yaml:"cols"`
	Bodies        int           `yaml:"bodies"`
	Ticks         int           `yaml:"ticks"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	QueryDistance float64       `yaml:"query_distance"`
	MaxSpeed      float64       `yaml:"max_speed"`
	Seed          string        `yaml:"seed"`
	LogLevel      string        `yaml:"log_level"`
	ReportEvery   time.Duration `yaml:"report_every"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.World.Width = 1000
	cfg.World.Height = 1000
	cfg.Rows = 50
	cfg.Cols = 50
	cfg.Bodies = 5000
	cfg.Ticks = 1000
	cfg.TickInterval = 16 * time.Millisecond
	cfg.QueryDistance = 10
	cfg.MaxSpeed = 40
	cfg.Seed = "gridsim"
	cfg.LogLevel = "info"
	cfg.ReportEvery = 2 * time.Second
	return cfg
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Bodies < 0 {
		return fmt.Errorf("bodies must not be negative, got %d", c.Bodies)
	}
	cellW := c.World.Width / float64(c.Cols)
	cellH := c.World.Height / float64(c.Rows)
	if c.QueryDistance > min(cellW, cellH) {
		return fmt.Errorf("query_distance %g exceeds the smaller cell dimension %g",
			c.QueryDistance, min(cellW, cellH))
	}
	return nil
}
