package types

import "fmt"

// WeightError reports an invalid criterion weight in a RankingConfig.
type WeightError struct {
	Criterion string
	Weight    int
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("invalid weight %d for criterion %q: weights must be non-negative", e.Weight, e.Criterion)
}
