package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the screening_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "screening_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/screening_agent ./cmd/screening_agent'", binaryPath)
	}

	return binaryPath
}

// writeTempJSON writes content to a temp file and returns its path
func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validApplicantJSON = `{
	"name": "Jane Smith",
	"email": "jane.smith@example.com",
	"phone": "555-123-4567",
	"city": "Seattle",
	"key_skills": "go, python, sql",
	"experience_years": 5,
	"education_level": "bachelor"
}`

const validWeightsJSON = `{
	"weights": {
		"skill": 50,
		"experience": 30,
		"education": 20
	}
}`

const validExistingJSON = `{
	"applications": [
		{
			"id": "550e8400-e29b-41d4-a716-446655440000",
			"submission_index": 0,
			"applicant": {
				"name": "Bob Jones",
				"email": "bob@example.com"
			}
		}
	]
}`
