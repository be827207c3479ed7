package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/applicant-screening/internal/parsing"
	"github.com/jonathan/applicant-screening/internal/types"
)

// Simple-flavor scoring constants.
const (
	simplePointsPerSkill         = 20
	simplePointsPerYear          = 10
	simplePointsPerCertification = 30
	simplePointsPerTrainingHit   = 25
	simpleUnknownEducationScore  = 50
	simplePersonalityDefault     = 70
	simpleNeutralScore           = 50

	areaExactScore     = 100
	areaSubstringScore = 75
	areaMismatchScore  = 30
	areaNoDataScore    = 50

	otherExactScore       = 100
	otherPartialCap       = 75
	otherPointsPerWordHit = 25
)

// educationLevelScores is the fixed mapping from recognized education levels
// to simple-flavor scores. Levels not listed here score the unknown default.
var educationLevelScores = map[string]int{
	"high-school": 60,
	"bachelor":    70,
	"master":      85,
	"phd":         100,
}

// trainingKeywords is the fixed keyword list matched against free text when
// no structured certifications field is present.
var trainingKeywords = []string{"training", "course", "workshop", "seminar", "bootcamp", "certification"}

// SimpleStrategy scores each selected criterion independently and combines
// them as a weighted average. Criteria with missing input are omitted from
// the result and the total.
type SimpleStrategy struct{}

// NewSimpleStrategy returns the simple weighted-average scoring strategy.
func NewSimpleStrategy() *SimpleStrategy {
	return &SimpleStrategy{}
}

// Name returns the strategy identifier.
func (s *SimpleStrategy) Name() string { return StrategySimple }

// Score computes per-criterion scores for every selected criterion with a
// positive weight, then the weighted total. A weight total of zero, or zero
// scorable criteria, yields a total of 0 rather than an error. Unrecognized
// criterion identifiers score a neutral default so the aggregate stays
// well-formed.
func (s *SimpleStrategy) Score(rec types.ApplicantRecord, cfg types.RankingConfig) *types.ScoringResult {
	result := &types.ScoringResult{
		Strategy: StrategySimple,
		Criteria: make(map[string]types.CriterionScore),
	}

	weightedSum := 0.0
	for criterion, weight := range cfg.Weights {
		if !cfg.Weights.HasPositiveWeight(criterion) {
			continue
		}
		score, ok := s.scoreCriterion(criterion, rec, cfg)
		if !ok {
			continue // Missing input: criterion omitted from result and total
		}
		result.Criteria[criterion] = score
		weightedSum += float64(score.Score) * float64(weight) / 100.0
	}

	result.TotalScore = clampScore(int(math.Round(weightedSum)))
	return result
}

// scoreCriterion dispatches to the per-criterion scorer. The boolean reports
// whether the criterion could be scored at all.
func (s *SimpleStrategy) scoreCriterion(criterion string, rec types.ApplicantRecord, cfg types.RankingConfig) (types.CriterionScore, bool) {
	switch criterion {
	case types.CriterionSkill:
		return scoreSimpleSkill(rec)
	case types.CriterionExperience:
		return scoreSimpleExperience(rec)
	case types.CriterionEducation:
		return scoreSimpleEducation(rec)
	case types.CriterionPersonality:
		return types.CriterionScore{
			Score:     simplePersonalityDefault,
			Reasoning: "Default personality score pending richer analysis",
		}, true
	case types.CriterionTraining, types.CriterionCertification:
		return scoreSimpleTraining(rec)
	case types.CriterionAreaLiving:
		return scoreSimpleAreaLiving(rec, cfg)
	case types.CriterionOther:
		return scoreSimpleOther(rec, cfg)
	default:
		return types.CriterionScore{
			Score:     simpleNeutralScore,
			Reasoning: fmt.Sprintf("Unrecognized criterion %q; neutral default applied", criterion),
		}, true
	}
}

// scoreSimpleSkill awards points per listed skill, capped at 100.
func scoreSimpleSkill(rec types.ApplicantRecord) (types.CriterionScore, bool) {
	skills := parsing.SplitList(rec.KeySkills)
	if skills == nil {
		return types.CriterionScore{}, false
	}

	score := len(skills) * simplePointsPerSkill
	if score > 100 {
		score = 100
	}
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: skills,
		Reasoning:       fmt.Sprintf("%d skills listed", len(skills)),
	}, true
}

// scoreSimpleExperience awards points per year of experience, capped at 100.
// Negative years are intentionally not clamped here: the raw signal is
// preserved and bounded later by the aggregate clamp.
func scoreSimpleExperience(rec types.ApplicantRecord) (types.CriterionScore, bool) {
	if rec.ExperienceYears == nil {
		return types.CriterionScore{}, false
	}

	years := *rec.ExperienceYears
	score := years * simplePointsPerYear
	if score > 100 {
		score = 100
	}
	return types.CriterionScore{
		Score:     score,
		Reasoning: fmt.Sprintf("%d years of experience", years),
	}, true
}

// scoreSimpleEducation maps the education level through a fixed table;
// recognized levels get their table score, anything else present scores the
// unknown default.
func scoreSimpleEducation(rec types.ApplicantRecord) (types.CriterionScore, bool) {
	level := strings.ToLower(strings.TrimSpace(rec.EducationLevel))
	if level == "" {
		return types.CriterionScore{}, false
	}

	if score, ok := educationLevelScores[level]; ok {
		return types.CriterionScore{
			Score:     score,
			Reasoning: fmt.Sprintf("Education level %q", level),
		}, true
	}
	return types.CriterionScore{
		Score:     simpleUnknownEducationScore,
		Reasoning: fmt.Sprintf("Unmapped education level %q", level),
	}, true
}

// scoreSimpleTraining prefers the structured certifications field; without
// one it counts fixed training keywords in the free text.
func scoreSimpleTraining(rec types.ApplicantRecord) (types.CriterionScore, bool) {
	if certifications := parsing.SplitList(rec.Certifications); certifications != nil {
		score := len(certifications) * simplePointsPerCertification
		if score > 100 {
			score = 100
		}
		return types.CriterionScore{
			Score:           score,
			MatchedKeywords: certifications,
			Reasoning:       fmt.Sprintf("%d certifications listed", len(certifications)),
		}, true
	}

	freeText := rec.FreeText()
	if strings.TrimSpace(freeText) == "" {
		return types.CriterionScore{}, false
	}

	textLower := strings.ToLower(freeText)
	matched := make([]string, 0, len(trainingKeywords))
	for _, keyword := range trainingKeywords {
		if strings.Contains(textLower, keyword) {
			matched = append(matched, keyword)
		}
	}

	score := len(matched) * simplePointsPerTrainingHit
	if score > 100 {
		score = 100
	}
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       fmt.Sprintf("%d training keywords found in resume text", len(matched)),
	}, true
}

// scoreSimpleAreaLiving compares the applicant's city against the job's
// city: exact normalized match, substring match either way, mismatch, or a
// neutral score when either side is missing.
func scoreSimpleAreaLiving(rec types.ApplicantRecord, cfg types.RankingConfig) (types.CriterionScore, bool) {
	applicantCity := parsing.NormalizeLocation(rec.City)
	jobCity := parsing.NormalizeLocation(cfg.JobCity)
	if applicantCity == "" || jobCity == "" {
		return types.CriterionScore{
			Score:     areaNoDataScore,
			Reasoning: "No location data available",
		}, true
	}

	switch {
	case applicantCity == jobCity:
		return types.CriterionScore{
			Score:           areaExactScore,
			MatchedKeywords: []string{applicantCity},
			Reasoning:       "Applicant lives in the job's city",
		}, true
	case strings.Contains(applicantCity, jobCity) || strings.Contains(jobCity, applicantCity):
		return types.CriterionScore{
			Score:           areaSubstringScore,
			MatchedKeywords: []string{applicantCity},
			Reasoning:       "Applicant location partially matches the job's city",
		}, true
	default:
		return types.CriterionScore{
			Score:     areaMismatchScore,
			Reasoning: "Applicant lives outside the job's city",
		}, true
	}
}

// scoreSimpleOther matches the configured custom keyword against the
// combined free text: full match, partial word-level match, or no match. No
// configured keyword scores neutral.
func scoreSimpleOther(rec types.ApplicantRecord, cfg types.RankingConfig) (types.CriterionScore, bool) {
	keyword := strings.ToLower(strings.TrimSpace(cfg.CustomKeyword))
	if keyword == "" {
		return types.CriterionScore{
			Score:     simpleNeutralScore,
			Reasoning: "No custom keyword configured",
		}, true
	}

	combined := strings.ToLower(rec.FreeText() + " " + rec.KeySkills)
	if strings.Contains(combined, keyword) {
		return types.CriterionScore{
			Score:           otherExactScore,
			MatchedKeywords: []string{keyword},
			Reasoning:       fmt.Sprintf("Keyword %q found in resume text", keyword),
		}, true
	}

	matched := make([]string, 0)
	for _, word := range parsing.Tokenize(keyword) {
		if strings.Contains(combined, word) {
			matched = append(matched, word)
		}
	}
	if len(matched) > 0 {
		score := len(matched) * otherPointsPerWordHit
		if score > otherPartialCap {
			score = otherPartialCap
		}
		return types.CriterionScore{
			Score:           score,
			MatchedKeywords: matched,
			Reasoning:       fmt.Sprintf("Partial keyword match (%s)", strings.Join(matched, ", ")),
		}, true
	}

	return types.CriterionScore{
		Score:     0,
		Reasoning: fmt.Sprintf("Keyword %q not found in resume text", keyword),
	}, true
}
