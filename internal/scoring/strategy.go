// Package scoring computes per-criterion heuristic scores for applications
// and combines them into a final 0-100 total. Two strategies coexist: a
// simple weighted average over caller-selected criteria, and an enhanced
// multi-criteria strategy driven by per-position reference data. Both are
// pure and allocation-fresh per call, so they are safe to invoke
// concurrently.
package scoring

import (
	"github.com/jonathan/applicant-screening/internal/types"
)

// Strategy names reported in ScoringResult.Strategy.
const (
	StrategySimple   = "simple"
	StrategyEnhanced = "enhanced"
)

// Strategy scores one application. Implementations never fail on missing or
// malformed applicant data: absent fields degrade to omitted criteria
// (simple) or baseline scores (enhanced).
type Strategy interface {
	Name() string
	Score(rec types.ApplicantRecord, cfg types.RankingConfig) *types.ScoringResult
}

// ScoreApplication scores an application with the enhanced strategy when a
// position reference is supplied, and the simple strategy otherwise.
func ScoreApplication(rec types.ApplicantRecord, cfg types.RankingConfig, ref *types.PositionReference) *types.ScoringResult {
	if ref != nil {
		return NewEnhancedStrategy(*ref).Score(rec, cfg)
	}
	return NewSimpleStrategy().Score(rec, cfg)
}

// clampScore bounds a criterion or total score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
