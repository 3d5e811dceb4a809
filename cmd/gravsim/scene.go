package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
)

// world is one simulator wired to its force pass and drawable scene.
type world struct {
	cfg     *config.Config
	sim     *dynamo.Simulator
	gravity *physics.Gravity
	scene   *scene.Scene
}

// loadScene resolves --preset, then --config, then per-flag overrides.
func loadScene(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("dt") {
		cfg.TimeStep = timeStep
	}
	if flags.Changed("min-distance") {
		cfg.MinDistance = minDistance
	}
	if flags.Changed("g") {
		cfg.G = gravConst
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	return cfg, cfg.Validate()
}

func newWorld(cfg *config.Config) (*world, error) {
	descs := cfg.Descriptors()
	params := cfg.Params()
	gravity := physics.NewGravity(params)

	sim, err := dynamo.New(descs, params, gravity, integrators.NewSymplecticEuler())
	if err != nil {
		return nil, err
	}
	sc, err := scene.New(descs)
	if err != nil {
		return nil, err
	}
	sim.SetSink(sc)

	return &world{cfg: cfg, sim: sim, gravity: gravity, scene: sc}, nil
}

func (w *world) center() mgl64.Vec2 {
	return mgl64.Vec2{w.cfg.Width / 2, w.cfg.Height / 2}
}

// defaultMetrics treats a body as escaped once it is a full diagonal away
// from the middle of the world.
func (w *world) defaultMetrics() []dynamo.Metric {
	return metrics.Defaults(w.gravity, w.center(), math.Hypot(w.cfg.Width, w.cfg.Height))
}
