package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_IdenticalStrings(t *testing.T) {
	for _, s := range []string{"", "John", "new york ny", "josé garcía"} {
		assert.Equal(t, 1.0, Score(s, s), "input %q", s)
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"John", "Joan"},
		{"new york", "newark"},
		{"", "nonempty"},
		{"o'brien-smith", "obrien smith"},
	}
	for _, pair := range pairs {
		assert.Equal(t, Score(pair[0], pair[1]), Score(pair[1], pair[0]), "pair %v", pair)
	}
}

func TestScore_NearMatch(t *testing.T) {
	score := Score("John", "Joan")
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
}

func TestScore_EmptyVersusNonEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Score("John", ""))
	assert.Equal(t, 0.0, Score("", "John"))
}

func TestScore_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Score("", ""))
}

func TestScore_CompletelyDifferent(t *testing.T) {
	assert.Less(t, Score("abcd", "wxyz"), 0.5)
}

func TestScore_UnicodeNames(t *testing.T) {
	score := Score("josé garcía", "jose garcia")
	assert.Greater(t, score, 0.8)
	assert.Less(t, score, 1.0)
}

func TestScore_WithinUnitInterval(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely different and much longer string"},
		{"x", "y"},
		{"same", "same"},
	}
	for _, pair := range pairs {
		score := Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
