package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenCommand_MissingInputs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing applicant",
			args:        []string{"screen", "-w", "weights.json"},
			errorString: "--applicant is required",
		},
		{
			name:        "Missing weights",
			args:        []string{"screen", "-a", "applicant.json"},
			errorString: "--weights is required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestScreenCommand_NewApplicantGetsScored(t *testing.T) {
	binaryPath := getBinaryPath(t)

	applicantPath := writeTempJSON(t, "applicant.json", validApplicantJSON)
	existingPath := writeTempJSON(t, "existing.json", validExistingJSON)
	weightsPath := writeTempJSON(t, "weights.json", validWeightsJSON)
	outPath := filepath.Join(t.TempDir(), "outcome.json")

	cmd := exec.Command(binaryPath, "screen", "-a", applicantPath, "-e", existingPath, "-w", weightsPath, "-o", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"is_duplicate": false`)
	assert.Contains(t, string(data), `"scoring"`)
}

func TestScreenCommand_PositionDefaultsToEnhanced(t *testing.T) {
	binaryPath := getBinaryPath(t)

	applicantPath := writeTempJSON(t, "applicant.json", validApplicantJSON)
	weightsPath := writeTempJSON(t, "weights.json", validWeightsJSON)
	outPath := filepath.Join(t.TempDir(), "outcome.json")

	cmd := exec.Command(binaryPath, "screen", "-a", applicantPath, "-w", weightsPath, "-p", "software-engineer", "-o", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	// No explicit --strategy: setting a position selects the enhanced strategy.
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strategy": "enhanced"`)
}

func TestScreenCommand_DuplicateSkipsScoring(t *testing.T) {
	binaryPath := getBinaryPath(t)

	applicantPath := writeTempJSON(t, "applicant.json", validApplicantJSON)
	existingPath := writeTempJSON(t, "existing.json", `{
		"applications": [
			{
				"id": "550e8400-e29b-41d4-a716-446655440000",
				"submission_index": 0,
				"applicant": {
					"name": "Jane Smith",
					"email": "jane.smith@example.com",
					"phone": "(555) 123-4567"
				}
			}
		]
	}`)
	weightsPath := writeTempJSON(t, "weights.json", validWeightsJSON)
	outPath := filepath.Join(t.TempDir(), "outcome.json")

	cmd := exec.Command(binaryPath, "screen", "-a", applicantPath, "-e", existingPath, "-w", weightsPath, "-o", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"is_duplicate": true`)
	assert.NotContains(t, string(data), `"scoring"`)
	assert.Contains(t, string(output), "likely duplicate")
}

func TestScreenCommand_ConfigFileProvidesDefaults(t *testing.T) {
	binaryPath := getBinaryPath(t)

	applicantPath := writeTempJSON(t, "applicant.json", validApplicantJSON)
	weightsPath := writeTempJSON(t, "weights.json", validWeightsJSON)
	outPath := filepath.Join(t.TempDir(), "outcome.json")
	configPath := writeTempJSON(t, "config.json", `{
		"applicant": "`+applicantPath+`",
		"weights": "`+weightsPath+`",
		"output": "`+outPath+`",
		"strategy": "enhanced",
		"position": "software-engineer"
	}`)

	cmd := exec.Command(binaryPath, "screen", "--config", configPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strategy": "enhanced"`)
}
