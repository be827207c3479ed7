// Package positions provides the static per-position reference data consumed
// by the enhanced scoring strategy. The default data set ships embedded in
// the binary and is parsed once per process; callers may instead load a
// reference file of the same shape at runtime.
package positions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/applicant-screening/internal/schemas"
	"github.com/jonathan/applicant-screening/internal/types"
)

//go:embed positions.json
var embeddedPositions []byte

// referenceData is the on-disk shape of a position reference document.
type referenceData struct {
	Positions []types.PositionReference `json:"positions"`
}

// Registry is a read-only lookup of position reference entries keyed by
// position identifier. Safe for concurrent use: it is never mutated after
// construction.
type Registry struct {
	byID map[string]types.PositionReference
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry parsed from the embedded
// reference data. Parsing happens once; subsequent calls return the same
// registry.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = parse(embeddedPositions)
	})
	return defaultRegistry, defaultErr
}

// LoadFile builds a registry from a position reference JSON file, for
// deployments that override the embedded data.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read position reference file %s: %w", path, err)
	}
	registry, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position reference file %s: %w", path, err)
	}
	return registry, nil
}

func parse(data []byte) (*Registry, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("position reference document failed schema validation: %w", err)
	}

	var doc referenceData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse position reference JSON: %w", err)
	}

	byID := make(map[string]types.PositionReference, len(doc.Positions))
	for _, ref := range doc.Positions {
		if ref.PositionID == "" {
			return nil, fmt.Errorf("position reference entry missing position_id")
		}
		if _, exists := byID[ref.PositionID]; exists {
			return nil, fmt.Errorf("duplicate position reference entry %q", ref.PositionID)
		}
		byID[ref.PositionID] = ref
	}
	return &Registry{byID: byID}, nil
}

// validateDocument checks a reference document against the position
// reference schema when the schema file can be located. Document mismatches
// are hard errors. A missing schema file (a binary installed outside the
// repository tree) skips the check, and malformed JSON falls through to the
// parser's own error.
func validateDocument(data []byte) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/position_reference.schema.json")
	if schemaPath == "" {
		return nil
	}
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil
	}

	err = schemas.ValidateJSONString(string(schemaContent), string(data))
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	return nil
}

// Lookup returns the reference entry for a position identifier. Unknown
// positions get a neutral default entry (empty keyword lists, all
// multipliers 1.0) so that enhanced scoring still proceeds.
func (r *Registry) Lookup(positionID string) (types.PositionReference, bool) {
	if ref, ok := r.byID[positionID]; ok {
		return ref, true
	}
	return types.PositionReference{PositionID: positionID}, false
}

// IDs returns the known position identifiers.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}
