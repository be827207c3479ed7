// Package pipeline ties the duplicate detector and the scoring strategies
// together into the two top-level flows the CLI exposes: screening a single
// new application against history, and scoring a batch of applications into
// a ranked list.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/applicant-screening/internal/duplicate"
	"github.com/jonathan/applicant-screening/internal/positions"
	"github.com/jonathan/applicant-screening/internal/scoring"
	"github.com/jonathan/applicant-screening/internal/types"
)

// maxConcurrentScores bounds the errgroup used by ScoreBatch. Scoring is
// CPU-only string work, so a small limit keeps batches from spawning a
// goroutine per application.
const maxConcurrentScores = 8

// Options selects the scoring strategy for a run.
type Options struct {
	// Strategy is scoring.StrategySimple or scoring.StrategyEnhanced.
	Strategy string

	// Registry resolves position references for the enhanced strategy.
	// When nil, the embedded default registry is used.
	Registry *positions.Registry
}

// ScreenOutcome is the combined result of screening one application:
// the duplicate verdict, and the scoring breakdown when the application
// was not rejected as a duplicate.
type ScreenOutcome struct {
	Duplicate types.DuplicateCheckResult `json:"duplicate"`
	Scoring   *types.ScoringResult       `json:"scoring,omitempty"`
}

// Screen runs the duplicate gate for app against existing and, when the
// applicant is not flagged as a duplicate, scores it with the strategy
// selected in opts. The duplicate verdict is always populated.
func Screen(ctx context.Context, app types.Application, existing []types.Application, cfg types.RankingConfig, opts Options) (*ScreenOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranking config: %w", err)
	}

	history := make([]types.ApplicantRecord, 0, len(existing))
	for _, prior := range existing {
		history = append(history, prior.Applicant)
	}

	outcome := &ScreenOutcome{Duplicate: duplicate.Check(app.Applicant, history)}
	if outcome.Duplicate.IsDuplicate {
		return outcome, nil
	}

	result, err := ScoreOne(app, cfg, opts)
	if err != nil {
		return nil, err
	}
	outcome.Scoring = result
	return outcome, nil
}

// ScoreBatch scores every application concurrently and returns the batch
// reranked by total score. Each worker writes only its own index, so the
// output is identical to scoring sequentially and then calling Rerank.
// The input slice is not modified.
func ScoreBatch(ctx context.Context, apps []types.Application, cfg types.RankingConfig, opts Options) ([]types.Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranking config: %w", err)
	}

	scored := make([]types.Application, len(apps))
	copy(scored, apps)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i := range scored {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := ScoreOne(scored[i], cfg, opts)
			if err != nil {
				return fmt.Errorf("scoring application %s: %w", scored[i].ID, err)
			}
			scored[i].TotalScore = result.TotalScore
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scoring.Rerank(scored), nil
}

// ScoreOne applies the selected strategy to a single application. The
// enhanced strategy resolves the application's position id against the
// registry; unknown positions fall back to neutral reference data.
func ScoreOne(app types.Application, cfg types.RankingConfig, opts Options) (*types.ScoringResult, error) {
	switch opts.Strategy {
	case scoring.StrategyEnhanced:
		registry := opts.Registry
		if registry == nil {
			var err error
			registry, err = positions.Default()
			if err != nil {
				return nil, fmt.Errorf("loading position references: %w", err)
			}
		}
		ref, _ := registry.Lookup(app.PositionID)
		return scoring.ScoreApplication(app.Applicant, cfg, &ref), nil
	case scoring.StrategySimple, "":
		return scoring.ScoreApplication(app.Applicant, cfg, nil), nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", opts.Strategy)
	}
}
