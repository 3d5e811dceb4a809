package config

import (
	"math"
	"sort"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

var Presets = map[string]*Config{
	"solar":  DefaultConfig(),
	"orbit":  orbitPreset(),
	"binary": binaryPreset(),
	"ring":   RingPreset(6),
}

// orbitPreset gives earth and mars circular speeds around the sun.
func orbitPreset() *Config {
	cfg := DefaultConfig()
	cfg.Name = "orbit"
	cfg.Ticks = 3000
	sun := cfg.Bodies[0]
	for i := 1; i < len(cfg.Bodies); i++ {
		r := sun.X - cfg.Bodies[i].X
		cfg.Bodies[i].VY = -physics.CircularSpeed(cfg.G, sun.Mass, r)
	}
	return cfg
}

func binaryPreset() *Config {
	const (
		mass = 3e10
		sep  = 100.0
	)
	v := math.Sqrt(dynamo.DefaultG * mass / (2 * sep))

	cfg := DefaultConfig()
	cfg.Name = "binary"
	cfg.Ticks = 3000
	cfg.Bodies = []BodyConfig{
		{X: 400 - sep/2, Y: 300, VY: -v, Mass: mass, Radius: 7, Color: "#ff8800"},
		{X: 400 + sep/2, Y: 300, VY: v, Mass: mass, Radius: 7, Color: "#00ccff"},
	}
	return cfg
}

// RingPreset puts n light bodies on circular orbits around a heavy core.
func RingPreset(n int) *Config {
	const (
		core   = 8e10
		radius = 150.0
	)
	cfg := DefaultConfig()
	cfg.Name = "ring"
	cfg.Ticks = 3000
	cfg.Bodies = []BodyConfig{{X: 400, Y: 300, Mass: core, Radius: 12, Color: "white"}}

	v := physics.CircularSpeed(dynamo.DefaultG, core, radius)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		sin, cos := math.Sincos(angle)
		cfg.Bodies = append(cfg.Bodies, BodyConfig{
			X:      400 + radius*cos,
			Y:      300 + radius*sin,
			VX:     -v * sin,
			VY:     v * cos,
			Mass:   1e8,
			Radius: 3,
			Color:  "cyan",
		})
	}
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
