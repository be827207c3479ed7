package scoring

import (
	"sort"

	"github.com/jonathan/applicant-screening/internal/types"
)

// Rerank sorts already-scored applications by descending total score and
// assigns 1-based rank positions. Ties keep original submission order. The
// input slice is not mutated; re-running on unchanged data yields identical
// rank assignments.
func Rerank(apps []types.Application) []types.Application {
	ranked := make([]types.Application, len(apps))
	copy(ranked, apps)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].SubmissionIndex < ranked[j].SubmissionIndex
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
