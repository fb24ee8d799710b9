package config

var Presets = map[string]*Config{
	"lj-moderate": {
		Potential: "lj", Closure: "hnc", Temperature: 1.5, NPoints: 4095, Dr: 0.01,
		Components: []ComponentConfig{{Density: 0.5, Epsilon: 1.0, Sigma: 1.0}},
		Solver:     SolverConfig{Mix: 0.8, Tolerance: 1e-9, MaxIter: 1000},
	},
	"lj-dense": {
		Potential: "lj", Closure: "hnc", Temperature: 1.5, NPoints: 4095, Dr: 0.01,
		Components: []ComponentConfig{{Density: 0.8, Epsilon: 1.0, Sigma: 1.0}},
		Solver:     SolverConfig{Mix: 0.5, Tolerance: 1e-9, MaxIter: 5000},
	},
	"wca-soft": {
		Potential: "wca", Closure: "hnc", Temperature: 1.0, NPoints: 2047, Dr: 0.02,
		Components: []ComponentConfig{{Density: 0.5, Epsilon: 1.0, Sigma: 1.0}},
		Solver:     SolverConfig{Mix: 0.8, Tolerance: 1e-9, MaxIter: 1000},
	},
	"binary-lj": {
		Potential: "lj", Closure: "hnc", Temperature: 1.5, NPoints: 4095, Dr: 0.01,
		Components: []ComponentConfig{
			{Density: 0.4, Epsilon: 1.0, Sigma: 1.0},
			{Density: 0.2, Epsilon: 0.8, Sigma: 1.2},
		},
		Solver: SolverConfig{Mix: 0.7, Tolerance: 1e-9, MaxIter: 2000},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
