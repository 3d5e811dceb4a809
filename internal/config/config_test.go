package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "solar" {
		t.Errorf("expected name solar, got %s", cfg.Name)
	}
	if cfg.Params() != dynamo.DefaultParams() {
		t.Errorf("unexpected params %+v", cfg.Params())
	}
	if len(cfg.Bodies) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(cfg.Bodies))
	}
	if cfg.Bodies[0].Mass != 5e10 || cfg.Bodies[0].Color != "yellow" {
		t.Errorf("unexpected sun %+v", cfg.Bodies[0])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDescriptors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bodies[1].VY = 2

	descs := cfg.Descriptors()
	if len(descs) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descs))
	}
	want := dynamo.Descriptor{X: 300, Y: 300, VY: 2, Mass: 1e10, Radius: 5, Color: "blue"}
	if descs[1] != want {
		t.Errorf("got %+v, want %+v", descs[1], want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative ticks", func(c *Config) { c.Ticks = -1 }},
		{"zero ticks", func(c *Config) { c.Ticks = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	cfg := GetPreset("binary")
	cfg.Ticks = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != "binary" || loaded.Ticks != 42 {
		t.Errorf("unexpected config %+v", loaded)
	}
	if len(loaded.Bodies) != 2 || loaded.Bodies[1] != cfg.Bodies[1] {
		t.Errorf("bodies did not survive a round trip: %+v", loaded.Bodies)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "name: tiny\nmin_distance: 2\nbodies:\n  - {x: 1, y: 2, mass: 3, radius: 4, color: red}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.G != dynamo.DefaultG || cfg.TimeStep != dynamo.DefaultTimeStep {
		t.Errorf("defaults were lost: %+v", cfg.Params())
	}
	if cfg.MinDistance != 2 {
		t.Errorf("expected min distance 2, got %f", cfg.MinDistance)
	}
	if len(cfg.Bodies) != 1 || cfg.Bodies[0].Mass != 3 {
		t.Errorf("unexpected bodies %+v", cfg.Bodies)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("fps: -3\n"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error")
	}

	garbled := filepath.Join(dir, "garbled.yaml")
	os.WriteFile(garbled, []byte("bodies: [oops"), 0644)
	if _, err := Load(garbled); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("solar")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Bodies[0].Mass = 1

	if GetPreset("solar").Bodies[0].Mass != 5e10 {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestRingPresetSpeeds(t *testing.T) {
	cfg := GetPreset("ring")
	core := cfg.Bodies[0]
	want := math.Sqrt(cfg.G * core.Mass / 150)

	for _, b := range cfg.Bodies[1:] {
		r := math.Hypot(b.X-core.X, b.Y-core.Y)
		if math.Abs(r-150) > 1e-9 {
			t.Errorf("body off the ring: r=%f", r)
		}
		v := math.Hypot(b.VX, b.VY)
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("expected speed %g, got %g", want, v)
		}
		// velocity is tangent to the ring
		if dot := (b.X-core.X)*b.VX + (b.Y-core.Y)*b.VY; math.Abs(dot) > 1e-9 {
			t.Errorf("velocity not tangent, dot=%g", dot)
		}
	}
}
