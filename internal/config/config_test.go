package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential != "lj" {
		t.Errorf("expected potential lj, got %s", cfg.Potential)
	}
	if cfg.Closure != "hnc" {
		t.Errorf("expected closure hnc, got %s", cfg.Closure)
	}
	if cfg.NPoints <= 0 || cfg.Dr <= 0 {
		t.Error("grid parameters should be positive")
	}
	if len(cfg.Components) != 1 {
		t.Fatalf("expected one component, got %d", len(cfg.Components))
	}
	if cfg.Solver.Mix <= 0 || cfg.Solver.Mix > 1 {
		t.Errorf("mix out of range: %f", cfg.Solver.Mix)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Closure = "py"
	cfg.Temperature = 2.5
	cfg.Components = append(cfg.Components, ComponentConfig{Density: 0.1, Epsilon: 0.5, Sigma: 1.2})

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Closure != "py" || loaded.Temperature != 2.5 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Components) != 2 || loaded.Components[1].Sigma != 1.2 {
		t.Errorf("round trip lost components: %+v", loaded.Components)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	// A partial file keeps defaults for everything it omits.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("closure: py\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Closure != "py" {
		t.Errorf("expected closure py, got %s", cfg.Closure)
	}
	if cfg.NPoints != DefaultNPoints || cfg.Solver.MaxIter != DefaultMaxIter {
		t.Error("omitted fields should keep defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lj-moderate")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Components[0].Density != 0.5 {
		t.Errorf("expected density 0.5, got %f", cfg.Components[0].Density)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestDensities(t *testing.T) {
	cfg := GetPreset("binary-lj")
	rhos := cfg.Densities()
	if len(rhos) != 2 || rhos[0] != 0.4 || rhos[1] != 0.2 {
		t.Errorf("unexpected densities: %v", rhos)
	}
}

func TestBuildTable(t *testing.T) {
	for _, name := range []string{"lj", "wca"} {
		cfg := DefaultConfig()
		cfg.Potential = name
		if _, err := cfg.BuildTable(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.Potential = "coulomb"
	cfg.Bjerrum = 0.7
	cfg.Components = []ComponentConfig{{Density: 0.1, Charge: 1}, {Density: 0.1, Charge: -1}}
	if _, err := cfg.BuildTable(); err != nil {
		t.Errorf("coulomb: %v", err)
	}

	cfg.Potential = "yukawa"
	if _, err := cfg.BuildTable(); err == nil {
		t.Error("expected error for unknown potential")
	}
}
