// Package types provides type definitions for structured data used throughout the applicant-screening system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// ApplicantRecord holds the structured fields extracted from a single
// application submission. Identifying fields and resume-derived fields are
// all optional: upstream extraction is noisy, and an empty string (or nil
// ExperienceYears) means the field was absent. The record is an immutable
// input to scoring and duplicate detection.
type ApplicantRecord struct {
	// Identifying fields
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`

	// Resume-derived fields
	KeySkills       string `json:"key_skills,omitempty"` // Comma-separated skill list
	ExperienceYears *int   `json:"experience_years,omitempty"`
	EducationLevel  string `json:"education_level,omitempty"`
	Certifications  string `json:"certifications,omitempty"` // Comma-separated
	ResumeSummary   string `json:"resume_summary,omitempty"`
	Transcript      string `json:"transcript,omitempty"`
}

// FreeText returns the combined free-form text of the record (resume summary
// plus transcript), used for keyword matching.
func (r *ApplicantRecord) FreeText() string {
	switch {
	case r.ResumeSummary != "" && r.Transcript != "":
		return r.ResumeSummary + " " + r.Transcript
	case r.ResumeSummary != "":
		return r.ResumeSummary
	default:
		return r.Transcript
	}
}

// Application wraps an ApplicantRecord with its submission identity and the
// scoring outcome, if any. SubmissionIndex preserves original submission
// order and is the tie-breaker during re-ranking.
type Application struct {
	ID              uuid.UUID       `json:"id"`
	PositionID      string          `json:"position_id,omitempty"`
	SubmissionIndex int             `json:"submission_index"`
	Applicant       ApplicantRecord `json:"applicant"`
	TotalScore      int             `json:"total_score,omitempty"`
	Rank            int             `json:"rank,omitempty"`
}
