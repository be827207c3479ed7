package types

import (
	"github.com/go-playground/validator/v10"
)

// Criterion identifiers recognized by the scoring strategies.
const (
	CriterionPersonality   = "personality"
	CriterionSkill         = "skill"
	CriterionAreaLiving    = "area_living"
	CriterionExperience    = "experience"
	CriterionTraining      = "training"
	CriterionCertification = "certification"
	CriterionEducation     = "education"
	CriterionOther         = "other"
)

// KnownCriteria lists every criterion identifier the scorers understand,
// in presentation order.
var KnownCriteria = []string{
	CriterionPersonality,
	CriterionSkill,
	CriterionAreaLiving,
	CriterionExperience,
	CriterionTraining,
	CriterionCertification,
	CriterionEducation,
	CriterionOther,
}

// CriteriaWeights maps a criterion identifier to its integer weight. The set
// of keys is the selected criteria for a ranking. Callers are expected to
// make weights sum to 100, but the engine tolerates any sum (including zero).
type CriteriaWeights map[string]int

// HasPositiveWeight reports whether the criterion is selected with a weight
// greater than zero.
func (w CriteriaWeights) HasPositiveWeight(criterion string) bool {
	return w[criterion] > 0
}

// RankingConfig carries the caller-supplied inputs for one ranking run:
// the selected criteria weights plus the contextual values two of the
// scorers need (the job's city for area_living, the custom keyword for
// the "other" criterion).
type RankingConfig struct {
	Weights       CriteriaWeights `json:"weights" validate:"required"`
	JobCity       string          `json:"job_city,omitempty"`
	CustomKeyword string          `json:"custom_keyword,omitempty"`
}

// Validate validates the RankingConfig using the validator. Weights must be
// present and non-negative; unknown criterion identifiers are allowed (they
// score a neutral default rather than failing validation).
func (c *RankingConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	for criterion, weight := range c.Weights {
		if weight < 0 {
			return &WeightError{Criterion: criterion, Weight: weight}
		}
	}
	return nil
}
