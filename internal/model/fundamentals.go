package model

// Fundamentals holds the per-ticker fundamental metrics used by the
// fundamental evaluator. Zero fields mean the metric was unavailable.
type Fundamentals struct {
	TrailingPE    float64
	DividendYield float64 // fraction, 0.02 = 2%
	MarketCap     float64
	ProfitMargin  float64 // fraction, 0.10 = 10%
	DebtToEquity  float64
}
