// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/applicant-screening/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Applicant string `json:"applicant,omitempty"` // Path to applicant record JSON
	Existing  string `json:"existing,omitempty"`  // Path to existing applications JSON
	Weights   string `json:"weights,omitempty"`   // Path to ranking config JSON
	Positions string `json:"positions,omitempty"` // Path to position reference JSON (embedded defaults if empty)
	Output    string `json:"output,omitempty"`    // Path to write result JSON (stdout if empty)

	// Behavior
	Position string `json:"position,omitempty"` // Position id to score against
	Strategy string `json:"strategy,omitempty"` // Scoring strategy: "simple" or "enhanced"
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed score breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Strategy {
	case "", scoring.StrategySimple, scoring.StrategyEnhanced:
	default:
		return fmt.Errorf("config error: unknown strategy %q (want %q or %q)", c.Strategy, scoring.StrategySimple, scoring.StrategyEnhanced)
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct{ name, path string }{
		{"applicant", c.Applicant},
		{"existing", c.Existing},
		{"weights", c.Weights},
		{"positions", c.Positions},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Applicant == "" {
		result.Applicant = defaults.Applicant
	}
	if result.Existing == "" {
		result.Existing = defaults.Existing
	}
	if result.Weights == "" {
		result.Weights = defaults.Weights
	}
	if result.Positions == "" {
		result.Positions = defaults.Positions
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Position == "" {
		result.Position = defaults.Position
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
