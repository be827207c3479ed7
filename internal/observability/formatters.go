// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/applicant-screening/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoringResult outputs a per-criterion breakdown of one scoring run.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", result.Strategy))
	sb.WriteString("\n")

	criteria := make([]string, 0, len(result.Criteria))
	for name := range result.Criteria {
		criteria = append(criteria, name)
	}
	sort.Strings(criteria)

	for _, name := range criteria {
		cs := result.Criteria[name]
		sb.WriteString(fmt.Sprintf("%-14s %d\n", name+":", cs.Score))
		if len(cs.MatchedKeywords) > 0 {
			keywords := strings.Join(cs.MatchedKeywords, ", ")
			if len(keywords) > 40 {
				keywords = keywords[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  matched: %s\n", keywords))
		}
	}

	if result.Bonus != nil && result.Bonus.Points > 0 {
		sb.WriteString(fmt.Sprintf("\nBonus: +%d\n", result.Bonus.Points))
		count := min(len(result.Bonus.Reasons), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Bonus.Reasons[i]))
		}
		if len(result.Bonus.Reasons) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Bonus.Reasons)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nTotal score: %d", result.TotalScore))
	p.printBox("SCORING BREAKDOWN", sb.String())
}

// PrintDuplicateCheck outputs the duplicate verdict with matched fields.
func (p *Printer) PrintDuplicateCheck(result *types.DuplicateCheckResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	verdict := "NEW APPLICANT"
	if result.IsDuplicate {
		verdict = "LIKELY DUPLICATE"
	}
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))

	if len(result.MatchedFields) > 0 {
		sb.WriteString("\nMatched fields:\n")
		for _, field := range result.MatchedFields {
			sb.WriteString(fmt.Sprintf("  • %s\n", field))
		}
	}

	p.printBox("DUPLICATE CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedApplications outputs the top N applications with ranks and scores.
func (p *Printer) PrintRankedApplications(apps []types.Application) {
	if len(apps) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total applications ranked: %d\n\n", len(apps)))

	count := min(len(apps), maxItemsToShow)
	for i := 0; i < count; i++ {
		app := apps[i]
		name := app.Applicant.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", app.Rank, name))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", app.TotalScore))
	}
	if len(apps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(apps)-maxItemsToShow))
	}

	p.printBox("RANKED APPLICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummaryLine prints a single-line status message outside a box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummaryLine(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
