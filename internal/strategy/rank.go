package strategy

import (
	"sort"

	"TickerSentry/internal/model"
)

// Rank orders results from worst score to best. The sort is stable, so
// tied tickers keep their input order. The input slice is not mutated.
func Rank(results []model.ScoredResult) []model.ScoredResult {
	out := make([]model.ScoredResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}
