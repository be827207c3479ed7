// Package similarity provides the edit-distance similarity metric used by
// duplicate detection.
package similarity

import (
	"github.com/agnivade/levenshtein"
)

// Score computes a 0-1 similarity between two strings: 1.0 for identical
// input, decreasing with Levenshtein edit distance as
// 1 - distance/max(len(a), len(b)) over runes. Two empty strings are
// identical (1.0); one empty and one non-empty string share nothing (0.0).
// Score is symmetric and never fails.
func Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}

	score := 1.0 - float64(distance)/float64(longest)
	if score < 0 {
		score = 0
	}
	return score
}
