package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-screening/internal/observability"
	"github.com/jonathan/applicant-screening/internal/pipeline"
	"github.com/jonathan/applicant-screening/internal/positions"
	"github.com/jonathan/applicant-screening/internal/scoring"
	"github.com/jonathan/applicant-screening/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single applicant against a ranking config",
	Long: "Score an applicant record with the selected strategy and ranking config, writing a ScoringResult JSON that validates against the scoring_result schema.\n\n" +
		"Recognized weight criteria: " + strings.Join(types.KnownCriteria, ", ") + ". Unrecognized criteria score a neutral 50.",
	RunE: runScore,
}

var (
	scoreApplicantFile string
	scoreWeightsFile   string
	scoreOutputFile    string
	scorePosition      string
	scoreStrategy      string
	scorePositionsFile string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreApplicantFile, "applicant", "a", "", "Path to applicant record JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreWeightsFile, "weights", "w", "", "Path to ranking config JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (stdout if omitted)")
	scoreCmd.Flags().StringVarP(&scorePosition, "position", "p", "", "Position id to score against (enables the enhanced strategy)")
	scoreCmd.Flags().StringVarP(&scoreStrategy, "strategy", "s", "", "Scoring strategy: simple or enhanced (default: enhanced when --position is set, simple otherwise)")
	scoreCmd.Flags().StringVar(&scorePositionsFile, "positions", "", "Path to position reference JSON (embedded defaults if omitted)")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a formatted score breakdown")

	_ = scoreCmd.MarkFlagRequired("applicant")
	_ = scoreCmd.MarkFlagRequired("weights")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	rec, err := loadApplicant(scoreApplicantFile)
	if err != nil {
		return err
	}
	cfg, err := loadRankingConfig(scoreWeightsFile)
	if err != nil {
		return err
	}

	opts, err := scoringOptions(scoreStrategy, scorePosition, scorePositionsFile)
	if err != nil {
		return err
	}

	app := types.Application{
		ID:         uuid.New(),
		PositionID: scorePosition,
		Applicant:  rec,
	}
	result, err := pipeline.ScoreOne(app, cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to score applicant: %w", err)
	}

	if err := writeArtifact(scoreOutputFile, "scoring_result.schema.json", result); err != nil {
		return err
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintScoringResult(result)
	}
	if scoreOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored applicant: %d/100\n", result.TotalScore)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
	}

	return nil
}

// scoringOptions builds pipeline options from the shared strategy flags.
// An explicit --strategy wins; otherwise the presence of a position id
// selects the enhanced strategy.
func scoringOptions(strategy, position, positionsFile string) (pipeline.Options, error) {
	opts := pipeline.Options{Strategy: strategy}
	if strategy == "" && position != "" {
		opts.Strategy = scoring.StrategyEnhanced
	}

	if positionsFile != "" {
		registry, err := positions.LoadFile(positionsFile)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("failed to load position references: %w", err)
		}
		opts.Registry = registry
	}
	return opts, nil
}
