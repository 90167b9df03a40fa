// Package adapter contains infrastructure adapters for the disksort CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/disksort/internal/model"
)

// DefaultConfigPath is read when no --config flag is given.
const DefaultConfigPath = ".disksort.yaml"

// Config holds run defaults that command-line flags may override.
type Config struct {
	Algorithms []m.Algorithm `yaml:"algorithms"`
	Sizes      []int         `yaml:"sizes"`
	Parallel   int           `yaml:"parallel"`
	ShowRows   bool          `yaml:"show_rows"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{Parallel: 1}
}

// Validate rejects values no run could use.
func (c Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size %d: %w", n, m.ErrConstruction)
		}
	}

	for _, alg := range c.Algorithms {
		if !alg.Supported() {
			return fmt.Errorf("unsupported algorithm: %q", alg)
		}
	}

	return nil
}

// ConfigAdapter loads run configuration from disk.
type ConfigAdapter interface {
	// Load reads path on top of DefaultConfig. With required false a missing
	// file yields the defaults.
	Load(path string, required bool) (Config, error)
}

// LocalConfigAdapter reads YAML files from the local filesystem.
type LocalConfigAdapter struct{}

// NewLocalConfigAdapter constructs a LocalConfigAdapter.
func NewLocalConfigAdapter() *LocalConfigAdapter {
	return &LocalConfigAdapter{}
}

// Load implements ConfigAdapter.
func (a *LocalConfigAdapter) Load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
