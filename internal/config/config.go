package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quietloop/decide/internal/evaluator"
	"github.com/quietloop/decide/internal/neuron"
)

// #region config
// Config bundles every tunable constant. All fields are optional in the YAML
// file; absent fields keep their defaults.
type Config struct {
	Weights    evaluator.Weights    `yaml:"weights"`
	Thresholds evaluator.Thresholds `yaml:"thresholds"`
	Neuron     neuron.Config        `yaml:"neuron"`
}

// Default returns the built-in constants.
func Default() Config {
	return Config{
		Weights:    evaluator.DefaultWeights(),
		Thresholds: evaluator.DefaultThresholds(),
		Neuron:     neuron.DefaultConfig(),
	}
}

// Validate checks the loaded constants.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	return nil
}

// #endregion config

// #region load
// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load
