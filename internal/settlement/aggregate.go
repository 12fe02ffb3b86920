package settlement

import (
	"sort"

	"dr-settlement/internal/model"
)

// TrimmedMean averages a series after discarding exactly one copy of
// the maximum and one copy of the minimum, even when the extremes are
// duplicated. Series of length two or less fall back to the plain
// mean. An empty series yields 0.
func TrimmedMean(s model.Series) float64 {
	if len(s) <= 2 {
		return s.Mean()
	}
	sorted := s.Clone()
	sort.Float64s(sorted)
	trimmed := sorted[1 : len(sorted)-1]
	return model.Series(trimmed).Mean()
}
