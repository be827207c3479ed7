package types

// CriterionMultipliers scales the enhanced strategy's criterion scores per
// position. A zero value is treated as 1.0 so that sparse reference entries
// stay neutral.
type CriterionMultipliers struct {
	Skills         float64 `json:"skills,omitempty"`
	Experience     float64 `json:"experience,omitempty"`
	Education      float64 `json:"education,omitempty"`
	Certifications float64 `json:"certifications,omitempty"`
}

// SkillsOrDefault returns the skills multiplier, defaulting to 1.0.
func (m CriterionMultipliers) SkillsOrDefault() float64 { return orOne(m.Skills) }

// ExperienceOrDefault returns the experience multiplier, defaulting to 1.0.
func (m CriterionMultipliers) ExperienceOrDefault() float64 { return orOne(m.Experience) }

// EducationOrDefault returns the education multiplier, defaulting to 1.0.
func (m CriterionMultipliers) EducationOrDefault() float64 { return orOne(m.Education) }

// CertificationsOrDefault returns the certifications multiplier, defaulting to 1.0.
func (m CriterionMultipliers) CertificationsOrDefault() float64 { return orOne(m.Certifications) }

func orOne(v float64) float64 {
	if v <= 0 {
		return 1.0
	}
	return v
}

// PositionReference is the static per-position reference entry consumed by
// the enhanced scoring strategy: expected skill tiers, education fields,
// training and personality keywords, and per-criterion multipliers. Loaded
// once per process and read-only afterward.
type PositionReference struct {
	PositionID         string               `json:"position_id"`
	Title              string               `json:"title,omitempty"`
	RequiredSkills     []string             `json:"required_skills,omitempty"`
	PreferredSkills    []string             `json:"preferred_skills,omitempty"`
	BonusSkills        []string             `json:"bonus_skills,omitempty"`
	PreferredFields    []string             `json:"preferred_fields,omitempty"` // Education fields of study
	ExperienceKeywords []string             `json:"experience_keywords,omitempty"`
	TrainingKeywords   []string             `json:"training_keywords,omitempty"`
	PersonalityTraits  []string             `json:"personality_traits,omitempty"`
	ScoreMultipliers   CriterionMultipliers `json:"score_multipliers,omitempty"`
}
