package strategy

import (
	"math"
	"testing"

	"TickerSentry/internal/model"
)

func TestComposeWeightedAverage(t *testing.T) {
	results := []model.IndicatorResult{
		{Name: FamilyTrendCloud, Score: 0.9},
		{Name: FamilyMovingAverage, Score: 0.9},
		{Name: FamilyMomentum, Score: 0.9},
		{Name: FamilyVolume, Score: 0.8},
		{Name: FamilyRetracement, Score: 0.7},
		{Name: FamilyFundamental, Score: 0.9},
	}
	got := Compose(results, DefaultWeights())
	// .25*.9 + .20*.9 + .20*.9 + .15*.8 + .10*.7 + .10*.9 = 0.865
	if got != 0.865 {
		t.Errorf("composite = %f, want 0.865", got)
	}
	if rec := DefaultThresholds().Recommend(got); rec != model.StrongBuy {
		t.Errorf("recommendation = %q, want STRONG_BUY", rec)
	}
}

func TestComposeAllNeutral(t *testing.T) {
	results := make([]model.IndicatorResult, 0, 6)
	for _, name := range []string{
		FamilyTrendCloud, FamilyMovingAverage, FamilyMomentum,
		FamilyVolume, FamilyRetracement, FamilyFundamental,
	} {
		results = append(results, model.IndicatorResult{Name: name, Score: NeutralScore})
	}
	got := Compose(results, DefaultWeights())
	if got != NeutralScore {
		t.Errorf("composite = %f, want %f", got, NeutralScore)
	}
	if rec := DefaultThresholds().Recommend(got); rec != model.Neutral {
		t.Errorf("recommendation = %q, want NEUTRAL", rec)
	}
}

func TestComposeSkipsUnweightedFamilies(t *testing.T) {
	weights := WeightTable{FamilyTrendCloud: 0.5, FamilyMomentum: 0.5}
	results := []model.IndicatorResult{
		{Name: FamilyTrendCloud, Score: 0.8},
		{Name: FamilyMomentum, Score: 0.4},
		{Name: FamilyVolume, Score: 0.0}, // no weight, must not drag the score
	}
	if got := Compose(results, weights); got != 0.6 {
		t.Errorf("composite = %f, want 0.6", got)
	}
}

func TestComposeNoApplicableWeights(t *testing.T) {
	results := []model.IndicatorResult{{Name: "unknown", Score: 0.9}}
	if got := Compose(results, DefaultWeights()); got != NeutralScore {
		t.Errorf("composite = %f, want neutral fallback %f", got, NeutralScore)
	}
}

func TestComposeRounding(t *testing.T) {
	weights := WeightTable{FamilyTrendCloud: 1, FamilyMomentum: 1, FamilyVolume: 1}
	results := []model.IndicatorResult{
		{Name: FamilyTrendCloud, Score: 0.1},
		{Name: FamilyMomentum, Score: 0.1},
		{Name: FamilyVolume, Score: 0.2},
	}
	// 0.4/3 = 0.1333... rounds to three decimals
	if got := Compose(results, weights); got != 0.133 {
		t.Errorf("composite = %f, want 0.133", got)
	}
}

func TestNewEngineValidation(t *testing.T) {
	if _, err := NewEngine(WeightTable{FamilyVolume: -1}, DefaultThresholds()); err == nil {
		t.Error("expected error for negative weight")
	}
	if _, err := NewEngine(WeightTable{}, DefaultThresholds()); err == nil {
		t.Error("expected error for empty weight table")
	}
	bad := DefaultThresholds()
	bad.Sell = 0.1 // below StrongSell
	if _, err := NewEngine(DefaultWeights(), bad); err == nil {
		t.Error("expected error for unordered thresholds")
	}
	if _, err := NewEngine(DefaultWeights(), DefaultThresholds()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEngineEvaluate(t *testing.T) {
	engine, err := NewEngine(DefaultWeights(), DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := seriesFromCloses(risingCloses(120))
	fund := &model.Fundamentals{TrailingPE: 15, DividendYield: 0.03, MarketCap: 2e9, ProfitMargin: 0.2}

	result := engine.Evaluate(series, fund)
	if result.Ticker != "TEST" {
		t.Errorf("ticker = %q, want TEST", result.Ticker)
	}
	if len(result.Indicators) != 6 {
		t.Fatalf("indicator count = %d, want 6", len(result.Indicators))
	}
	if result.Score <= 0.5 {
		t.Errorf("uptrend composite = %f, want > 0.5", result.Score)
	}
	if result.Recommendation != engine.Recommend(result.Score) {
		t.Errorf("recommendation %q does not match score %f", result.Recommendation, result.Score)
	}

	// Scoring is deterministic for the same inputs.
	again := engine.Evaluate(series, fund)
	if again.Score != result.Score || again.Recommendation != result.Recommendation {
		t.Errorf("repeat evaluation diverged: %f vs %f", again.Score, result.Score)
	}
}

func TestEngineEvaluateNilFundamentals(t *testing.T) {
	engine, _ := NewEngine(DefaultWeights(), DefaultThresholds())
	result := engine.Evaluate(seriesFromCloses(risingCloses(120)), nil)

	var fundResult *model.IndicatorResult
	for i := range result.Indicators {
		if result.Indicators[i].Name == FamilyFundamental {
			fundResult = &result.Indicators[i]
		}
	}
	if fundResult == nil {
		t.Fatal("fundamental indicator missing")
	}
	if !fundResult.Degraded || fundResult.Score != NeutralScore {
		t.Errorf("want degraded neutral fundamental, got degraded=%v score=%f",
			fundResult.Degraded, fundResult.Score)
	}
	if math.IsNaN(result.Score) {
		t.Error("composite must stay finite with degraded families")
	}
}
