package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/applicant-screening/internal/schemas"
	"github.com/jonathan/applicant-screening/internal/types"
)

// readArtifact reads a JSON file, validates it against the named schema when
// the schema can be resolved, and unmarshals it into v. Validation failures
// are hard errors; a missing or unloadable schema only logs a warning so the
// CLI stays usable from directories outside the repository.
func readArtifact(path, schemaName string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/" + schemaName); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("%s does not validate against schema: %w", path, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", path, err)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeArtifact marshals v with indentation and writes it to path, or to
// stdout when path is empty. Written files are checked against the named
// schema; mismatches are hard errors since they indicate a bug.
func writeArtifact(path, schemaName string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if schemaName == "" {
		return nil
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/" + schemaName); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}

// loadApplicant reads and validates a single applicant record.
func loadApplicant(path string) (types.ApplicantRecord, error) {
	var rec types.ApplicantRecord
	if err := readArtifact(path, "applicant_record.schema.json", &rec); err != nil {
		return types.ApplicantRecord{}, err
	}
	return rec, nil
}

// applicationSet is the on-disk envelope for application lists.
type applicationSet struct {
	Applications []types.Application `json:"applications"`
}

// loadApplications reads and validates a list of submitted applications.
func loadApplications(path string) ([]types.Application, error) {
	var set applicationSet
	if err := readArtifact(path, "ranked_applications.schema.json", &set); err != nil {
		return nil, err
	}
	return set.Applications, nil
}

// loadRankingConfig reads a ranking config and validates its weights.
func loadRankingConfig(path string) (types.RankingConfig, error) {
	var cfg types.RankingConfig
	if err := readArtifact(path, "ranking_config.schema.json", &cfg); err != nil {
		return types.RankingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return types.RankingConfig{}, fmt.Errorf("invalid ranking config %s: %w", path, err)
	}
	return cfg, nil
}
