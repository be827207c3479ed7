package types

// CriterionScore is the outcome of one per-criterion scorer: a 0-100 score
// plus the supporting evidence behind it.
type CriterionScore struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Reasoning       string   `json:"reasoning,omitempty"`
}

// BonusDetail describes the rule-based bonus applied by the enhanced
// strategy on top of the criterion mean.
type BonusDetail struct {
	Points  int      `json:"points"`
	Reasons []string `json:"reasons,omitempty"`
}

// ScoringResult is the full outcome of scoring one application. Criteria
// holds an entry per criterion actually scored; criteria with missing input
// are simply absent under the simple strategy. The result is created fresh
// per scoring call and never mutated afterward.
type ScoringResult struct {
	Strategy   string                    `json:"strategy"`
	Criteria   map[string]CriterionScore `json:"criteria"`
	Bonus      *BonusDetail              `json:"bonus,omitempty"`
	TotalScore int                       `json:"total_score"`
}
