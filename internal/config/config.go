package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ozsim/internal/potential"
)

const (
	DefaultNPoints     = 4095
	DefaultDr          = 0.01
	DefaultTemperature = 1.0
	DefaultMix         = 0.8
	DefaultTolerance   = 1e-9
	DefaultMaxIter     = 1000
)

type Config struct {
	Potential   string            `yaml:"potential"`
	Closure     string            `yaml:"closure"`
	Temperature float64           `yaml:"temperature"`
	NPoints     int               `yaml:"n_points"`
	Dr          float64           `yaml:"dr"`
	Bjerrum     float64           `yaml:"bjerrum"`
	Components  []ComponentConfig `yaml:"components"`
	Solver      SolverConfig      `yaml:"solver"`
}

type ComponentConfig struct {
	Density float64 `yaml:"density"`
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
	Charge  float64 `yaml:"charge"`
}

type SolverConfig struct {
	Mix       float64 `yaml:"mix"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential:   "lj",
		Closure:     "hnc",
		Temperature: DefaultTemperature,
		NPoints:     DefaultNPoints,
		Dr:          DefaultDr,
		Components: []ComponentConfig{
			{Density: 0.5, Epsilon: 1.0, Sigma: 1.0},
		},
		Solver: SolverConfig{
			Mix:       DefaultMix,
			Tolerance: DefaultTolerance,
			MaxIter:   DefaultMaxIter,
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
		return nil, err
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

// Densities collects the per-component number densities in order.
func (c *Config) Densities() []float64 {
	rhos := make([]float64, len(c.Components))
	for i, comp := range c.Components {
		rhos[i] = comp.Density
	}
	return rhos
}

// BuildTable assembles the potential table named by the config with one
// entry per configured component.
func (c *Config) BuildTable() (*potential.Table, error) {
	var tab *potential.Table

	switch c.Potential {
	case "lj", "":
		tab = potential.NewLennardJones()
		for _, comp := range c.Components {
			if _, err := tab.AddComponent(potential.Params{
				"epsilon": comp.Epsilon, "sigma": comp.Sigma,
			}); err != nil {
				return nil, err
			}
		}
	case "wca":
		tab = potential.NewWCA()
		for _, comp := range c.Components {
			if _, err := tab.AddComponent(potential.Params{
				"epsilon": comp.Epsilon, "sigma": comp.Sigma, "m": 12, "n": 6,
			}); err != nil {
				return nil, err
			}
		}
	case "coulomb":
		tab, err := potential.NewTable(potential.Coulomb(c.Bjerrum),
			[]string{"q"}, map[string]string{"q": "product"})
		if err != nil {
			return nil, err
		}
		for _, comp := range c.Components {
			if _, err := tab.AddComponent(potential.Params{"q": comp.Charge}); err != nil {
				return nil, err
			}
		}
		return tab, nil
	default:
		return nil, fmt.Errorf("config: unknown potential %q", c.Potential)
	}

	return tab, nil
}
