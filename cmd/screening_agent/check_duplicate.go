package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-screening/internal/duplicate"
	"github.com/jonathan/applicant-screening/internal/observability"
	"github.com/jonathan/applicant-screening/internal/types"
)

var checkDuplicateCmd = &cobra.Command{
	Use:   "check-duplicate",
	Short: "Check a new applicant against existing applications",
	Long:  "Compare an applicant record against a set of existing applications using fuzzy field matching, writing a DuplicateCheckResult JSON that validates against the duplicate_check schema.",
	RunE:  runCheckDuplicate,
}

var (
	checkApplicantFile string
	checkExistingFile  string
	checkOutputFile    string
	checkVerbose       bool
)

func init() {
	checkDuplicateCmd.Flags().StringVarP(&checkApplicantFile, "applicant", "a", "", "Path to applicant record JSON (required)")
	checkDuplicateCmd.Flags().StringVarP(&checkExistingFile, "existing", "e", "", "Path to existing applications JSON (required)")
	checkDuplicateCmd.Flags().StringVarP(&checkOutputFile, "out", "o", "", "Path to output JSON file (stdout if omitted)")
	checkDuplicateCmd.Flags().BoolVar(&checkVerbose, "verbose", false, "Print a formatted duplicate verdict")

	_ = checkDuplicateCmd.MarkFlagRequired("applicant")
	_ = checkDuplicateCmd.MarkFlagRequired("existing")

	rootCmd.AddCommand(checkDuplicateCmd)
}

func runCheckDuplicate(_ *cobra.Command, _ []string) error {
	rec, err := loadApplicant(checkApplicantFile)
	if err != nil {
		return err
	}
	existing, err := loadApplications(checkExistingFile)
	if err != nil {
		return err
	}

	history := make([]types.ApplicantRecord, 0, len(existing))
	for _, app := range existing {
		history = append(history, app.Applicant)
	}
	result := duplicate.Check(rec, history)

	if err := writeArtifact(checkOutputFile, "duplicate_check.schema.json", &result); err != nil {
		return err
	}

	if checkVerbose {
		observability.NewPrinter(os.Stdout).PrintDuplicateCheck(&result)
	}
	if checkOutputFile != "" {
		verdict := "new applicant"
		if result.IsDuplicate {
			verdict = "likely duplicate"
		}
		_, _ = fmt.Fprintf(os.Stdout, "Checked %d existing applications: %s (confidence %.2f)\n", len(existing), verdict, result.Confidence)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", checkOutputFile)
	}

	return nil
}
