// Package application orchestrates the scoring engine for callers:
// batch re-scoring of many candidates, composite ranking, and YAML
// configuration for both.
package application

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/scoring"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// ScoringConfig is the complete YAML configuration for a scoring run.
type ScoringConfig struct {
	// Cargo is the elected position candidates are scored for.
	Cargo string `yaml:"cargo" validate:"required"`

	// ReferenceYear resolves open-ended tenures. Injected explicitly
	// so runs are deterministic and reproducible.
	ReferenceYear int `yaml:"reference_year" validate:"required,min=1900,max=2200"`

	// Preset names the composite used for ranking output.
	Preset string `yaml:"preset" validate:"omitempty,oneof=balanced merit integrity_first presidential"`

	// CustomWeights, when present, adds a custom composite alongside
	// the named presets. Guardrail-clamped and normalized before use.
	CustomWeights *scoring.Weights `yaml:"custom_weights,omitempty"`

	// Engine holds engine-wide behavior flags.
	Engine scoring.Config `yaml:"engine"`

	// Batch holds the concurrent-execution settings.
	Batch BatchConfig `yaml:"batch"`
}

// DefaultScoringConfig returns a configuration with the balanced preset
// and default batch settings. Cargo and reference year must still be
// supplied by the caller.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Preset: "balanced",
		Batch:  DefaultBatchConfig(),
	}
}

// LoadConfig reads and validates a scoring configuration from a YAML
// file. Unknown fields are rejected.
func LoadConfig(path string) (*ScoringConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a scoring configuration from raw
// YAML bytes.
func ParseConfig(data []byte) (*ScoringConfig, error) {
	cfg := DefaultScoringConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration beyond struct tags: cargo
// membership and custom weight normalizability.
func (c *ScoringConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := domain.ParseCargo(c.Cargo); err != nil {
		return err
	}
	if c.CustomWeights != nil {
		if _, err := c.CustomWeights.Normalize(); err != nil {
			return err
		}
	}
	return nil
}

// ResolvedCargo returns the parsed cargo. Validate must have passed.
func (c *ScoringConfig) ResolvedCargo() domain.Cargo {
	cargo, _ := domain.ParseCargo(c.Cargo)
	return cargo
}
