package strategy

import (
	"math"

	"TickerSentry/internal/model"
)

// Engine runs all six evaluators over a price series and combines them
// into one composite score. Engines are stateless after construction and
// safe for concurrent use.
type Engine struct {
	weights    WeightTable
	thresholds Thresholds
}

// NewEngine validates the weight table and thresholds and returns an Engine.
func NewEngine(weights WeightTable, thresholds Thresholds) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights, thresholds: thresholds}, nil
}

// Evaluate scores one ticker. The fundamentals record may be nil, in
// which case the fundamental family degrades to neutral.
func (e *Engine) Evaluate(series *model.PriceSeries, fund *model.Fundamentals) *model.ScoredResult {
	results := []model.IndicatorResult{
		EvaluateTrendCloud(series),
		EvaluateMovingAverage(series),
		EvaluateMomentum(series),
		EvaluateVolume(series),
		EvaluateRetracement(series),
		EvaluateFundamental(fund),
	}
	score := Compose(results, e.weights)
	return &model.ScoredResult{
		Ticker:         series.Symbol,
		Score:          score,
		Recommendation: e.thresholds.Recommend(score),
		Indicators:     results,
	}
}

// Recommend exposes the engine's band mapping.
func (e *Engine) Recommend(score float64) model.Recommendation {
	return e.thresholds.Recommend(score)
}

// Compose computes the weighted composite score, normalized by the sum of
// weights actually applied and rounded to three decimals. Results whose
// family has no weight are excluded rather than counted as zero.
func Compose(results []model.IndicatorResult, weights WeightTable) float64 {
	var total, totalWeight float64
	for _, r := range results {
		w, ok := weights[r.Name]
		if !ok || w == 0 {
			continue
		}
		total += r.Score * w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return NeutralScore
	}
	return math.Round(total/totalWeight*1000) / 1000
}
