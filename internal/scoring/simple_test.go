package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/applicant-screening/internal/types"
)

func intPtr(v int) *int { return &v }

func simpleScore(t *testing.T, rec types.ApplicantRecord, cfg types.RankingConfig) *types.ScoringResult {
	t.Helper()
	result := NewSimpleStrategy().Score(rec, cfg)
	require.NotNil(t, result)
	assert.Equal(t, "simple", result.Strategy)
	return result
}

func TestSimpleSkill_FiveSkillsScoreExactly100(t *testing.T) {
	rec := types.ApplicantRecord{KeySkills: "Go, Python, SQL, Docker, Kubernetes"}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionSkill: 100}})

	require.Contains(t, result.Criteria, types.CriterionSkill)
	assert.Equal(t, 100, result.Criteria[types.CriterionSkill].Score)
	assert.Equal(t, 100, result.TotalScore)
}

func TestSimpleSkill_TwoSkills(t *testing.T) {
	rec := types.ApplicantRecord{KeySkills: "Go, SQL"}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionSkill: 100}})

	assert.Equal(t, 40, result.Criteria[types.CriterionSkill].Score)
	assert.Equal(t, []string{"Go", "SQL"}, result.Criteria[types.CriterionSkill].MatchedKeywords)
}

func TestSimpleSkill_MissingSkillsOmitsCriterion(t *testing.T) {
	result := simpleScore(t, types.ApplicantRecord{}, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionSkill: 100}})

	assert.NotContains(t, result.Criteria, types.CriterionSkill)
	assert.Equal(t, 0, result.TotalScore)
}

func TestSimpleExperience_ThreeYearsScoresExactly30(t *testing.T) {
	rec := types.ApplicantRecord{ExperienceYears: intPtr(3)}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionExperience: 100}})

	assert.Equal(t, 30, result.Criteria[types.CriterionExperience].Score)
	assert.Equal(t, 30, result.TotalScore)
}

func TestSimpleExperience_ExtremeYearsClampedTo100(t *testing.T) {
	rec := types.ApplicantRecord{ExperienceYears: intPtr(9999)}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionExperience: 100}})

	assert.Equal(t, 100, result.Criteria[types.CriterionExperience].Score)
}

func TestSimpleExperience_NegativeYearsNotClamped(t *testing.T) {
	rec := types.ApplicantRecord{ExperienceYears: intPtr(-5)}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionExperience: 100}})

	// The raw negative signal is preserved per criterion; the aggregate
	// clamp bounds the total.
	assert.Equal(t, -50, result.Criteria[types.CriterionExperience].Score)
	assert.Equal(t, 0, result.TotalScore)
}

func TestSimpleEducation_FixedMapping(t *testing.T) {
	cases := map[string]int{
		"high-school": 60,
		"bachelor":    70,
		"Bachelor":    70,
		"master":      85,
		"phd":         100,
	}
	for level, expected := range cases {
		rec := types.ApplicantRecord{EducationLevel: level}
		result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionEducation: 100}})
		assert.Equal(t, expected, result.Criteria[types.CriterionEducation].Score, "level %q", level)
	}
}

func TestSimpleEducation_UnmappedLevelScores50(t *testing.T) {
	rec := types.ApplicantRecord{EducationLevel: "trade school"}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionEducation: 100}})

	assert.Equal(t, 50, result.Criteria[types.CriterionEducation].Score)
}

func TestSimpleEducation_MissingLevelOmitsCriterion(t *testing.T) {
	result := simpleScore(t, types.ApplicantRecord{}, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionEducation: 100}})

	assert.NotContains(t, result.Criteria, types.CriterionEducation)
}

func TestSimplePersonality_FixedDefault(t *testing.T) {
	result := simpleScore(t, types.ApplicantRecord{}, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionPersonality: 100}})

	assert.Equal(t, 70, result.Criteria[types.CriterionPersonality].Score)
}

func TestSimpleTraining_CertificationsFieldPreferred(t *testing.T) {
	rec := types.ApplicantRecord{
		Certifications: "AWS SAA, CKA",
		ResumeSummary:  "completed many training courses and workshops",
	}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionCertification: 100}})

	assert.Equal(t, 60, result.Criteria[types.CriterionCertification].Score)
	assert.Equal(t, []string{"AWS SAA", "CKA"}, result.Criteria[types.CriterionCertification].MatchedKeywords)
}

func TestSimpleTraining_KeywordHitsInFreeText(t *testing.T) {
	rec := types.ApplicantRecord{ResumeSummary: "Attended a bootcamp and completed a certification course"}
	result := simpleScore(t, rec, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionTraining: 100}})

	// bootcamp, certification, course -> 3 hits * 25
	assert.Equal(t, 75, result.Criteria[types.CriterionTraining].Score)
}

func TestSimpleTraining_NoDataOmitsCriterion(t *testing.T) {
	result := simpleScore(t, types.ApplicantRecord{}, types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionTraining: 100}})

	assert.NotContains(t, result.Criteria, types.CriterionTraining)
}

func TestSimpleAreaLiving_ExactMatch(t *testing.T) {
	rec := types.ApplicantRecord{City: "New York, NY"}
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{types.CriterionAreaLiving: 100},
		JobCity: "new york ny",
	}
	result := simpleScore(t, rec, cfg)

	assert.Equal(t, 100, result.Criteria[types.CriterionAreaLiving].Score)
}

func TestSimpleAreaLiving_SubstringMatch(t *testing.T) {
	rec := types.ApplicantRecord{City: "New York"}
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{types.CriterionAreaLiving: 100},
		JobCity: "New York, NY",
	}
	result := simpleScore(t, rec, cfg)

	assert.Equal(t, 75, result.Criteria[types.CriterionAreaLiving].Score)
}

func TestSimpleAreaLiving_Mismatch(t *testing.T) {
	rec := types.ApplicantRecord{City: "Chicago"}
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{types.CriterionAreaLiving: 100},
		JobCity: "Boston",
	}
	result := simpleScore(t, rec, cfg)

	assert.Equal(t, 30, result.Criteria[types.CriterionAreaLiving].Score)
}

func TestSimpleAreaLiving_NoDataScoresNeutral(t *testing.T) {
	cfg := types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionAreaLiving: 100}}
	result := simpleScore(t, types.ApplicantRecord{}, cfg)

	assert.Equal(t, 50, result.Criteria[types.CriterionAreaLiving].Score)
}

func TestSimpleOther_ExactKeywordMatch(t *testing.T) {
	rec := types.ApplicantRecord{ResumeSummary: "Led a team through a cloud migration project"}
	cfg := types.RankingConfig{
		Weights:       types.CriteriaWeights{types.CriterionOther: 100},
		CustomKeyword: "cloud migration",
	}
	result := simpleScore(t, rec, cfg)

	assert.Equal(t, 100, result.Criteria[types.CriterionOther].Score)
}

func TestSimpleOther_PartialWordMatch(t *testing.T) {
	rec := types.ApplicantRecord{ResumeSummary: "Deep cloud expertise across providers"}
	cfg := types.RankingConfig{
		Weights:       types.CriteriaWeights{types.CriterionOther: 100},
		CustomKeyword: "cloud migration",
	}
	result := simpleScore(t, rec, cfg)

	// one of two keyword words found -> 25, under the partial cap
	assert.Equal(t, 25, result.Criteria[types.CriterionOther].Score)
}

func TestSimpleOther_NoMatch(t *testing.T) {
	rec := types.ApplicantRecord{ResumeSummary: "Warehouse logistics background"}
	cfg := types.RankingConfig{
		Weights:       types.CriteriaWeights{types.CriterionOther: 100},
		CustomKeyword: "kubernetes",
	}
	result := simpleScore(t, rec, cfg)

	assert.Equal(t, 0, result.Criteria[types.CriterionOther].Score)
}

func TestSimpleOther_NoKeywordConfiguredScoresNeutral(t *testing.T) {
	cfg := types.RankingConfig{Weights: types.CriteriaWeights{types.CriterionOther: 100}}
	result := simpleScore(t, types.ApplicantRecord{}, cfg)

	assert.Equal(t, 50, result.Criteria[types.CriterionOther].Score)
}

func TestSimpleTotal_AllCriteriaAbsentScoresZero(t *testing.T) {
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{
			types.CriterionSkill:      40,
			types.CriterionExperience: 30,
			types.CriterionEducation:  30,
		},
	}
	result := simpleScore(t, types.ApplicantRecord{}, cfg)

	assert.Empty(t, result.Criteria)
	assert.Equal(t, 0, result.TotalScore)
}

func TestSimpleTotal_WeightedAverage(t *testing.T) {
	rec := types.ApplicantRecord{
		KeySkills:       "Go, Python, SQL", // 60
		ExperienceYears: intPtr(5),         // 50
	}
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{
			types.CriterionSkill:      50,
			types.CriterionExperience: 50,
		},
	}
	result := simpleScore(t, rec, cfg)

	// 60*0.5 + 50*0.5 = 55
	assert.Equal(t, 55, result.TotalScore)
}

func TestSimpleTotal_ZeroWeightCriterionSkipped(t *testing.T) {
	rec := types.ApplicantRecord{KeySkills: "Go"}
	cfg := types.RankingConfig{
		Weights: types.CriteriaWeights{
			types.CriterionSkill:       0,
			types.CriterionPersonality: 100,
		},
	}
	result := simpleScore(t, rec, cfg)

	assert.NotContains(t, result.Criteria, types.CriterionSkill)
	assert.Equal(t, 70, result.TotalScore)
}

func TestSimpleTotal_NoWeightsAtAll(t *testing.T) {
	result := simpleScore(t, types.ApplicantRecord{KeySkills: "Go"}, types.RankingConfig{Weights: types.CriteriaWeights{}})

	assert.Equal(t, 0, result.TotalScore)
}

func TestSimpleTotal_UnrecognizedCriterionScoresNeutral(t *testing.T) {
	cfg := types.RankingConfig{Weights: types.CriteriaWeights{"astrology": 100}}
	result := simpleScore(t, types.ApplicantRecord{}, cfg)

	require.Contains(t, result.Criteria, "astrology")
	assert.Equal(t, 50, result.Criteria["astrology"].Score)
	assert.Equal(t, 50, result.TotalScore)
}
