package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-screening/internal/observability"
	"github.com/jonathan/applicant-screening/internal/pipeline"
	"github.com/jonathan/applicant-screening/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of applications by total score",
	Long:  "Assign 1-based ranks to a batch of applications ordered by total score. When a ranking config is supplied with --weights, the batch is (re)scored first.",
	RunE:  runRank,
}

var (
	rankInputFile     string
	rankOutputFile    string
	rankWeightsFile   string
	rankStrategy      string
	rankPositionsFile string
	rankVerbose       bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankInputFile, "in", "i", "", "Path to applications JSON (required)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (stdout if omitted)")
	rankCmd.Flags().StringVarP(&rankWeightsFile, "weights", "w", "", "Path to ranking config JSON; when set, applications are scored before ranking")
	rankCmd.Flags().StringVarP(&rankStrategy, "strategy", "s", "", "Scoring strategy: simple or enhanced (used with --weights)")
	rankCmd.Flags().StringVar(&rankPositionsFile, "positions", "", "Path to position reference JSON (embedded defaults if omitted)")
	rankCmd.Flags().BoolVar(&rankVerbose, "verbose", false, "Print the ranked leaderboard")

	_ = rankCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	apps, err := loadApplications(rankInputFile)
	if err != nil {
		return err
	}

	ranked := apps
	if rankWeightsFile != "" {
		cfg, err := loadRankingConfig(rankWeightsFile)
		if err != nil {
			return err
		}
		opts, err := scoringOptions(rankStrategy, "", rankPositionsFile)
		if err != nil {
			return err
		}
		ranked, err = pipeline.ScoreBatch(context.Background(), apps, cfg, opts)
		if err != nil {
			return fmt.Errorf("failed to score applications: %w", err)
		}
	} else {
		ranked = scoring.Rerank(apps)
	}

	if err := writeArtifact(rankOutputFile, "ranked_applications.schema.json", applicationSet{Applications: ranked}); err != nil {
		return err
	}

	if rankVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedApplications(ranked)
	}
	if rankOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Ranked %d applications\n", len(ranked))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", rankOutputFile)
	}

	return nil
}
