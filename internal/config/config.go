package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	DefaultTicks  = 600
	DefaultFPS    = 60
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Config struct {
	Name        string       `yaml:"name"`
	G           float64      `yaml:"g"`
	TimeStep    float64      `yaml:"time_step"`
	MinDistance float64      `yaml:"min_distance"`
	Ticks       int          `yaml:"ticks"`
	FPS         int          `yaml:"fps"`
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx,omitempty"`
	VY     float64 `yaml:"vy,omitempty"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// DefaultConfig is the sun, earth and mars scene, all starting at rest.
func DefaultConfig() *Config {
	return &Config{
		Name:        "solar",
		G:           dynamo.DefaultG,
		TimeStep:    dynamo.DefaultTimeStep,
		MinDistance: dynamo.DefaultMinDistance,
		Ticks:       DefaultTicks,
		FPS:         DefaultFPS,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Bodies: []BodyConfig{
			{X: 400, Y: 300, Mass: 5e10, Radius: 10, Color: "yellow"},
			{X: 300, Y: 300, Mass: 1e10, Radius: 5, Color: "blue"},
			{X: 200, Y: 300, Mass: 1e10, Radius: 5, Color: "red"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the run settings. Body masses and integration constants
// are checked by dynamo when the simulator is built.
func (c *Config) Validate() error {
	if c.Ticks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", c.Ticks)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{
		G:           c.G,
		TimeStep:    c.TimeStep,
		MinDistance: c.MinDistance,
	}
}

func (c *Config) Descriptors() []dynamo.Descriptor {
	descs := make([]dynamo.Descriptor, len(c.Bodies))
	for i, b := range c.Bodies {
		descs[i] = dynamo.Descriptor{
			X:      b.X,
			Y:      b.Y,
			VX:     b.VX,
			VY:     b.VY,
			Mass:   b.Mass,
			Radius: b.Radius,
			Color:  b.Color,
		}
	}
	return descs
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Bodies = make([]BodyConfig, len(c.Bodies))
	copy(out.Bodies, c.Bodies)
	return &out
}
