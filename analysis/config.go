package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file and merges it over DefaultConfig,
// so partial files only override the knobs they mention. The merged
// config is validated before being returned.
//
// Example file:
//
//	markov_order: 2
//	window_size: 32
//	window_step: 16
//	time_unit: 0.5
//	compute_local: true
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("analysis: read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("analysis: parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
