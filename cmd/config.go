package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/reassign-analytics/analysis/movelog"
)

// SessionConfig is the optional YAML file named by --config. Explicit flags win
// over file values.
type SessionConfig struct {
	Dataset      string         `yaml:"dataset"`
	Fraction     float64        `yaml:"fraction"`
	LogLevel     string         `yaml:"log_level"`
	VectorWidths map[string]int `yaml:"vector_widths"` // column name -> expected vector length
}

// loadSessionConfig parses path with strict field checking: unknown keys are errors.
func loadSessionConfig(fs afero.Fs, path string) (*SessionConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg SessionConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks value ranges. Zero values mean "not set".
func (c *SessionConfig) Validate() error {
	if math.IsNaN(c.Fraction) || c.Fraction < 0 || c.Fraction > 1 {
		return fmt.Errorf("fraction must be in (0, 1], got %v", c.Fraction)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	vector := make(map[string]bool, len(movelog.VectorColumns))
	for _, name := range movelog.VectorColumns {
		vector[name] = true
	}
	for name, width := range c.VectorWidths {
		if !vector[name] {
			return fmt.Errorf("vector_widths: %q is not a vector column", name)
		}
		if width <= 0 {
			return fmt.Errorf("vector_widths: %s width must be positive, got %d", name, width)
		}
	}
	return nil
}
