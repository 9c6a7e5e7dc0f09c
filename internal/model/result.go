package model

// IndicatorResult is one indicator family's verdict for one ticker.
// Score always lies in [0,1]. Degraded marks results where the family
// could not be computed and fell back to the neutral 0.5, with Reason
// carrying the diagnostic; callers can tell a genuine neutral reading
// from a failure-masked one.
type IndicatorResult struct {
	Name        string
	Description string
	Score       float64
	Degraded    bool
	Reason      string
}

// Recommendation is one of the six advisory bands.
type Recommendation string

const (
	StrongSell Recommendation = "STRONG_SELL"
	Sell       Recommendation = "SELL"
	Warning    Recommendation = "WARNING"
	Neutral    Recommendation = "NEUTRAL"
	Buy        Recommendation = "BUY"
	StrongBuy  Recommendation = "STRONG_BUY"
)

// ScoredResult is the engine's final output for one ticker: the composite
// score (3-decimal rounded), its recommendation band, and the contributing
// per-family results. It is owned by the run that produced it.
type ScoredResult struct {
	Ticker         string
	Score          float64
	Recommendation Recommendation
	Indicators     []IndicatorResult
}

// Exclusion records a ticker dropped from a batch because the provider
// returned no data at all.
type Exclusion struct {
	Ticker string
	Reason string
}

// BatchResult is the outcome of analyzing one ticker group.
type BatchResult struct {
	Results  []ScoredResult
	Excluded []Exclusion
}
