package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"score": {"type": "integer", "minimum": 0, "maximum": 100}
	},
	"additionalProperties": false
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": "Jane Doe", "score": 85}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"score": 85}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateJSONString_OutOfRangeValue(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": "Jane", "score": 150}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Error(), "score")
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": not-json`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "expected *SchemaLoadError, got %T", err)
}

func TestValidateJSON_FileBased(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(minimalSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "Jane"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingSchemaFile(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{}`), 0644))

	err := ValidateJSON(filepath.Join(t.TempDir(), "absent.schema.json"), docPath)
	require.Error(t, err)

	loadErr, ok := err.(*SchemaLoadError)
	require.True(t, ok)
	assert.Contains(t, loadErr.Error(), "absent.schema.json")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Running from internal/schemas, the repo schemas directory is two levels up.
	path := ResolveSchemaPath("schemas/position_reference.schema.json")
	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
