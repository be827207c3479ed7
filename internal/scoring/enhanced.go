package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/applicant-screening/internal/types"
)

// Enhanced-flavor scoring constants.
const (
	enhancedBaseScore = 50

	// Skill tier contributions, scaled by the match ratio per tier.
	requiredSkillPoints  = 30
	preferredSkillPoints = 15
	bonusSkillPoints     = 5

	// Experience baseline and keyword contribution.
	experienceBaseScore     = 40
	experienceKeywordPoints = 20

	// Education bonuses.
	educationFieldPoints = 20

	// Personality baseline and trait contribution.
	personalityBaseScore   = 50
	personalityTraitPoints = 50

	// enhancedMinimumScore is the floor for the enhanced total: every
	// submission with parseable resume data gets at least this much.
	enhancedMinimumScore = 25
)

// Bonus rules applied on top of the criterion mean.
const (
	bonusStrongCriteria       = 15 // 3+ criteria scored >= 60
	bonusExcellentCriteria    = 20 // 2+ criteria scored >= 80
	bonusManySkillMatches     = 12 // 5+ distinct matched skills
	bonusSomeSkillMatches     = 5  // 2+ distinct matched skills
	bonusWellRounded          = 8  // experience and education both >= 60
	bonusDetailedResume       = 5  // free text longer than 100 characters
	detailedResumeMinChars    = 100
	strongCriterionThreshold  = 60
	excellentCriterionLevel   = 80
	manySkillMatchesThreshold = 5
	someSkillMatchesThreshold = 2
)

// educationLevelWeights ranks recognized education level keywords for the
// enhanced education bonus.
var educationLevelWeights = map[string]int{
	"phd":         30,
	"doctorate":   30,
	"master":      22,
	"bachelor":    15,
	"associate":   8,
	"high school": 4,
	"high-school": 4,
	"diploma":     4,
}

// trainingKeywordWeights ranks training/certification keywords for the
// enhanced certification bonus.
var trainingKeywordWeights = map[string]int{
	"certification": 15,
	"certified":     12,
	"bootcamp":      12,
	"course":        8,
	"workshop":      6,
	"training":      5,
	"seminar":       5,
}

// EnhancedStrategy scores an application against per-position reference
// data, applies criterion multipliers, and stacks rule-based bonuses on top
// of the criterion mean. It is used at submission time, before any ranking
// weights exist, so every criterion is always scored.
type EnhancedStrategy struct {
	ref types.PositionReference
}

// NewEnhancedStrategy returns an enhanced strategy bound to one position's
// reference data.
func NewEnhancedStrategy(ref types.PositionReference) *EnhancedStrategy {
	return &EnhancedStrategy{ref: ref}
}

// Name returns the strategy identifier.
func (e *EnhancedStrategy) Name() string { return StrategyEnhanced }

// Score computes all five enhanced criterion scores, averages them, applies
// the bonus stack, caps at 100, and floors the result at the enhanced
// minimum. The ranking weights in cfg are ignored: the enhanced flavor
// weighs criteria equally and differentiates through multipliers and
// bonuses instead.
func (e *EnhancedStrategy) Score(rec types.ApplicantRecord, _ types.RankingConfig) *types.ScoringResult {
	skillScore, matchedSkills := e.scoreSkills(rec)
	experienceScore := e.scoreExperience(rec)
	educationScore := e.scoreEducation(rec)
	certificationScore := e.scoreCertifications(rec)
	personalityScore := e.scorePersonality(rec)

	criteria := map[string]types.CriterionScore{
		types.CriterionSkill:         skillScore,
		types.CriterionExperience:    experienceScore,
		types.CriterionEducation:     educationScore,
		types.CriterionCertification: certificationScore,
		types.CriterionPersonality:   personalityScore,
	}

	mean := 0.0
	for _, score := range criteria {
		mean += float64(score.Score)
	}
	mean /= float64(len(criteria))
	total := int(math.Round(mean))

	bonus := e.computeBonus(criteria, matchedSkills, rec)
	total += bonus.Points
	if total > 100 {
		total = 100
	}
	if total < enhancedMinimumScore {
		total = enhancedMinimumScore
	}

	result := &types.ScoringResult{
		Strategy:   StrategyEnhanced,
		Criteria:   criteria,
		TotalScore: total,
	}
	if bonus.Points > 0 {
		result.Bonus = &bonus
	}
	return result
}

// scoreSkills combines the match ratios of the three position skill tiers,
// required weighted highest, scaled by the position's skill multiplier.
func (e *EnhancedStrategy) scoreSkills(rec types.ApplicantRecord) (types.CriterionScore, []string) {
	haystack := buildSkillHaystack(rec)

	requiredRatio, requiredMatched := matchRatio(e.ref.RequiredSkills, haystack)
	preferredRatio, preferredMatched := matchRatio(e.ref.PreferredSkills, haystack)
	bonusRatio, bonusMatched := matchRatio(e.ref.BonusSkills, haystack)

	raw := float64(enhancedBaseScore) +
		requiredRatio*requiredSkillPoints +
		preferredRatio*preferredSkillPoints +
		bonusRatio*bonusSkillPoints
	score := clampScore(int(math.Round(raw * e.ref.ScoreMultipliers.SkillsOrDefault())))

	matched := dedupeSorted(append(append(requiredMatched, preferredMatched...), bonusMatched...))
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       skillReasoning(requiredRatio, matched),
	}, matched
}

// scoreExperience derives a baseline from the experience-keyword match
// ratio, then scales by a step function of years of experience and the
// position's experience multiplier.
func (e *EnhancedStrategy) scoreExperience(rec types.ApplicantRecord) types.CriterionScore {
	keywordRatio, matched := matchRatio(e.ref.ExperienceKeywords, strings.ToLower(rec.FreeText()))
	baseline := float64(experienceBaseScore) + keywordRatio*experienceKeywordPoints

	years := 0
	if rec.ExperienceYears != nil {
		years = *rec.ExperienceYears
	}
	raw := baseline * experienceYearsFactor(years) * e.ref.ScoreMultipliers.ExperienceOrDefault()
	score := clampScore(int(math.Round(raw)))

	reasoning := fmt.Sprintf("%d years of experience", years)
	if rec.ExperienceYears == nil {
		reasoning = "Years of experience not provided; baseline applied"
	}
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       reasoning,
	}
}

// experienceYearsFactor is the step function scaling the experience
// baseline by seniority.
func experienceYearsFactor(years int) float64 {
	switch {
	case years >= 10:
		return 1.3
	case years >= 5:
		return 1.15
	case years >= 3:
		return 1.05
	case years >= 1:
		return 0.95
	default:
		return 0.85
	}
}

// scoreEducation adds a level bonus from the weight table plus a bonus per
// matched preferred field, scaled by the position's education multiplier.
func (e *EnhancedStrategy) scoreEducation(rec types.ApplicantRecord) types.CriterionScore {
	raw := float64(enhancedBaseScore)
	levelText := strings.ToLower(rec.EducationLevel)
	matched := make([]string, 0)

	bestLevelWeight := 0
	bestLevel := ""
	for level, weight := range educationLevelWeights {
		if strings.Contains(levelText, level) && weight > bestLevelWeight {
			bestLevelWeight = weight
			bestLevel = level
		}
	}
	if bestLevelWeight > 0 {
		raw += float64(bestLevelWeight)
		matched = append(matched, bestLevel)
	}

	fieldText := strings.ToLower(rec.EducationLevel + " " + rec.FreeText())
	for _, field := range e.ref.PreferredFields {
		if strings.Contains(fieldText, strings.ToLower(field)) {
			raw += educationFieldPoints
			matched = append(matched, strings.ToLower(field))
		}
	}

	score := clampScore(int(math.Round(raw * e.ref.ScoreMultipliers.EducationOrDefault())))
	reasoning := "No recognized education level"
	if bestLevel != "" {
		reasoning = fmt.Sprintf("Education level %q recognized", bestLevel)
	}
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       reasoning,
	}
}

// scoreCertifications adds weighted points per matched training keyword,
// scaled by the position's certification multiplier. Keywords come from the
// position's training list plus the fixed keyword weight table.
func (e *EnhancedStrategy) scoreCertifications(rec types.ApplicantRecord) types.CriterionScore {
	haystack := strings.ToLower(rec.FreeText() + " " + rec.Certifications)
	raw := float64(enhancedBaseScore)
	matched := make([]string, 0)

	for _, keyword := range e.ref.TrainingKeywords {
		lower := strings.ToLower(keyword)
		if !strings.Contains(haystack, lower) {
			continue
		}
		weight, ok := trainingKeywordWeights[lower]
		if !ok {
			weight = trainingKeywordWeights["training"]
		}
		raw += float64(weight)
		matched = append(matched, lower)
	}

	score := clampScore(int(math.Round(raw * e.ref.ScoreMultipliers.CertificationsOrDefault())))
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       fmt.Sprintf("%d training keywords matched", len(matched)),
	}
}

// scorePersonality derives a baseline-plus-ratio score from the position's
// personality trait list matched against free text.
func (e *EnhancedStrategy) scorePersonality(rec types.ApplicantRecord) types.CriterionScore {
	ratio, matched := matchRatio(e.ref.PersonalityTraits, strings.ToLower(rec.FreeText()))
	score := clampScore(int(math.Round(personalityBaseScore + ratio*personalityTraitPoints)))

	reasoning := "No personality traits matched; baseline applied"
	if len(matched) > 0 {
		reasoning = fmt.Sprintf("Matched traits: %s", strings.Join(matched, ", "))
	}
	return types.CriterionScore{
		Score:           score,
		MatchedKeywords: matched,
		Reasoning:       reasoning,
	}
}

// computeBonus evaluates the rule-based bonuses stacked on the criterion
// mean.
func (e *EnhancedStrategy) computeBonus(criteria map[string]types.CriterionScore, matchedSkills []string, rec types.ApplicantRecord) types.BonusDetail {
	bonus := types.BonusDetail{Reasons: make([]string, 0, 4)}

	strongCount := 0
	excellentCount := 0
	for _, score := range criteria {
		if score.Score >= strongCriterionThreshold {
			strongCount++
		}
		if score.Score >= excellentCriterionLevel {
			excellentCount++
		}
	}
	if strongCount >= 3 {
		bonus.Points += bonusStrongCriteria
		bonus.Reasons = append(bonus.Reasons, fmt.Sprintf("%d criteria scored %d or above", strongCount, strongCriterionThreshold))
	}
	if excellentCount >= 2 {
		bonus.Points += bonusExcellentCriteria
		bonus.Reasons = append(bonus.Reasons, fmt.Sprintf("%d criteria scored %d or above", excellentCount, excellentCriterionLevel))
	}

	switch {
	case len(matchedSkills) >= manySkillMatchesThreshold:
		bonus.Points += bonusManySkillMatches
		bonus.Reasons = append(bonus.Reasons, fmt.Sprintf("%d distinct skills matched", len(matchedSkills)))
	case len(matchedSkills) >= someSkillMatchesThreshold:
		bonus.Points += bonusSomeSkillMatches
		bonus.Reasons = append(bonus.Reasons, fmt.Sprintf("%d distinct skills matched", len(matchedSkills)))
	}

	if criteria[types.CriterionExperience].Score >= strongCriterionThreshold &&
		criteria[types.CriterionEducation].Score >= strongCriterionThreshold {
		bonus.Points += bonusWellRounded
		bonus.Reasons = append(bonus.Reasons, "Strong in both experience and education")
	}

	if len(rec.FreeText()) > detailedResumeMinChars {
		bonus.Points += bonusDetailedResume
		bonus.Reasons = append(bonus.Reasons, "Detailed resume text provided")
	}

	return bonus
}

// buildSkillHaystack lowercases the applicant's listed skills and free text
// into one searchable string.
func buildSkillHaystack(rec types.ApplicantRecord) string {
	parts := make([]string, 0, 3)
	if rec.KeySkills != "" {
		parts = append(parts, rec.KeySkills)
	}
	if freeText := rec.FreeText(); freeText != "" {
		parts = append(parts, freeText)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// matchRatio reports which keywords appear in the haystack and the matched
// fraction of the list. An empty keyword list yields ratio 0.
func matchRatio(keywords []string, haystack string) (float64, []string) {
	if len(keywords) == 0 || haystack == "" {
		return 0, nil
	}
	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			matched = append(matched, strings.ToLower(keyword))
		}
	}
	return float64(len(matched)) / float64(len(keywords)), matched
}

// dedupeSorted removes duplicates and sorts for stable output.
func dedupeSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if _, exists := seen[item]; exists {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	sort.Strings(unique)
	return unique
}

// skillReasoning summarizes the skill match in a short note.
func skillReasoning(requiredRatio float64, matched []string) string {
	switch {
	case len(matched) == 0:
		return "No skill matches"
	case requiredRatio >= 0.7:
		return fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", "))
	case requiredRatio >= 0.4:
		return fmt.Sprintf("Moderate skill match (%s)", strings.Join(matched, ", "))
	default:
		return fmt.Sprintf("Partial skill match (%s)", strings.Join(matched, ", "))
	}
}
