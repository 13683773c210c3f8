package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravlab/internal/sim"
)

const (
	DefaultDt          = 86400.0 // one day in seconds
	DefaultTrailLength = 100
)

type Config struct {
	Preset      string       `yaml:"preset"`
	Dt          float64      `yaml:"dt"`
	TrailLength int          `yaml:"trail_length"`
	Workers     int          `yaml:"workers"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Mass  float64 `yaml:"mass"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Color string  `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:      "solar",
		Dt:          DefaultDt,
		TrailLength: DefaultTrailLength,
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

// BodySpecs resolves the configured bodies: an explicit bodies list wins,
// otherwise the named preset is looked up.
func (c *Config) BodySpecs() ([]sim.BodySpec, error) {
	bodies := c.Bodies
	if len(bodies) == 0 {
		bodies = GetPreset(c.Preset)
		if bodies == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", c.Preset, ListPresets())
		}
	}
	specs := make([]sim.BodySpec, len(bodies))
	for i, b := range bodies {
		specs[i] = sim.BodySpec{Mass: b.Mass, X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Color: b.Color}
	}
	return specs, nil
}

// Apply configures a simulation and loads the resolved bodies into it.
func (c *Config) Apply(s *sim.Simulation) error {
	specs, err := c.BodySpecs()
	if err != nil {
		return err
	}
	if err := s.SetTimeStep(c.Dt); err != nil {
		return err
	}
	if err := s.SetTrailCapacity(c.TrailLength); err != nil {
		return err
	}
	s.SetWorkers(c.Workers)
	return s.Load(specs)
}
