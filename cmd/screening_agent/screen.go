package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-screening/internal/config"
	"github.com/jonathan/applicant-screening/internal/observability"
	"github.com/jonathan/applicant-screening/internal/pipeline"
	"github.com/jonathan/applicant-screening/internal/scoring"
	"github.com/jonathan/applicant-screening/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the full screening flow for one applicant",
	Long: `Run the duplicate gate and, when the applicant is new, score it with the selected strategy.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScreen,
}

var (
	screenConfigPath    string
	screenApplicantFile string
	screenExistingFile  string
	screenWeightsFile   string
	screenOutputFile    string
	screenPosition      string
	screenStrategy      string
	screenPositionsFile string
	screenVerbose       bool
)

func init() {
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	screenCmd.Flags().StringVarP(&screenApplicantFile, "applicant", "a", "", "Path to applicant record JSON")
	screenCmd.Flags().StringVarP(&screenExistingFile, "existing", "e", "", "Path to existing applications JSON")
	screenCmd.Flags().StringVarP(&screenWeightsFile, "weights", "w", "", "Path to ranking config JSON")
	screenCmd.Flags().StringVarP(&screenOutputFile, "out", "o", "", "Path to output JSON file (stdout if omitted)")
	screenCmd.Flags().StringVarP(&screenPosition, "position", "p", "", "Position id to score against (enables the enhanced strategy)")
	screenCmd.Flags().StringVarP(&screenStrategy, "strategy", "s", "", "Scoring strategy: simple or enhanced")
	screenCmd.Flags().StringVar(&screenPositionsFile, "positions", "", "Path to position reference JSON (embedded defaults if omitted)")
	screenCmd.Flags().BoolVar(&screenVerbose, "verbose", false, "Print formatted verdict and score breakdowns")

	// Note: required inputs are validated after merging config

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if screenVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", screenConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("applicant") {
		cfg.Applicant = screenApplicantFile
	}
	if cmd.Flags().Changed("existing") {
		cfg.Existing = screenExistingFile
	}
	if cmd.Flags().Changed("weights") {
		cfg.Weights = screenWeightsFile
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = screenOutputFile
	}
	if cmd.Flags().Changed("position") {
		cfg.Position = screenPosition
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = screenStrategy
	}
	if cmd.Flags().Changed("positions") {
		cfg.Positions = screenPositionsFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = screenVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{Strategy: scoring.StrategySimple}
	if cfg.Position != "" {
		defaults.Strategy = scoring.StrategyEnhanced
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Applicant == "" {
		return fmt.Errorf("--applicant is required (via flag or config)")
	}
	if cfg.Weights == "" {
		return fmt.Errorf("--weights is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: Load inputs
	rec, err := loadApplicant(cfg.Applicant)
	if err != nil {
		return err
	}
	var existing []types.Application
	if cfg.Existing != "" {
		existing, err = loadApplications(cfg.Existing)
		if err != nil {
			return err
		}
	}
	rankingCfg, err := loadRankingConfig(cfg.Weights)
	if err != nil {
		return err
	}

	opts, err := scoringOptions(cfg.Strategy, cfg.Position, cfg.Positions)
	if err != nil {
		return err
	}

	// Step 6: Screen
	app := types.Application{
		ID:              uuid.New(),
		PositionID:      cfg.Position,
		SubmissionIndex: len(existing),
		Applicant:       rec,
	}
	outcome, err := pipeline.Screen(ctx, app, existing, rankingCfg, opts)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	if err := writeArtifact(cfg.Output, "", outcome); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintDuplicateCheck(&outcome.Duplicate)
		printer.PrintScoringResult(outcome.Scoring)
	}
	if cfg.Output != "" {
		if outcome.Duplicate.IsDuplicate {
			printer.PrintSummaryLine("Rejected as likely duplicate (confidence %.2f)", outcome.Duplicate.Confidence)
		} else {
			printer.PrintSummaryLine("Screened applicant: %d/100", outcome.Scoring.TotalScore)
		}
		printer.PrintSummaryLine("Output: %s", cfg.Output)
	}

	return nil
}
