package preflight

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/printforge/preflight/colors"
	"github.com/printforge/preflight/dimension"
	"github.com/printforge/preflight/geometry"
)

// Config gathers every calibration constant and reference table the
// analysis pipeline runs with. All of it is injected at construction
// and immutable afterwards; concurrent analyses share one Config
// without locking.
type Config struct {
	Geometry  geometry.Config    `yaml:"geometry"`
	Dimension dimension.Config   `yaml:"dimension"`
	Colors    []colors.Reference `yaml:"colors"`
}

// DefaultConfig returns the calibrated defaults for every component.
func DefaultConfig() Config {
	return Config{
		Geometry:  geometry.DefaultConfig(),
		Dimension: dimension.DefaultConfig(),
		Colors:    colors.DefaultReferences(),
	}
}

// LoadConfig reads a yaml configuration file over the defaults, so a
// file only needs to state what it changes.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
