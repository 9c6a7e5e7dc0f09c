package calculator

import "testing"

func trendingBars(n int) (highs, lows, closes []float64) {
	highs = make([]float64, n)
	lows = make([]float64, n)
	closes = make([]float64, n)
	for i := 0; i < n; i++ {
		base := 100 + float64(i)
		highs[i] = base + 1
		lows[i] = base + 0.5
		closes[i] = base + 0.8
	}
	return
}

func TestCalculateADXStrongTrend(t *testing.T) {
	highs, lows, closes := trendingBars(40)
	got, err := CalculateADX(highs, lows, closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A perfectly directional move has no minus-DM at all.
	if got < 90 {
		t.Errorf("ADX of a pure uptrend = %f, want >= 90", got)
	}
}

func TestCalculateADXFlatMarket(t *testing.T) {
	n := 40
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i], lows[i], closes[i] = 101, 99, 100
	}
	got, err := CalculateADX(highs, lows, closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("ADX of a flat market = %f, want 0", got)
	}
}

func TestCalculateADXErrors(t *testing.T) {
	highs, lows, closes := trendingBars(28) // needs 2*14+1
	if _, err := CalculateADX(highs, lows, closes, 14); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := CalculateADX(highs[:10], lows, closes, 5); err == nil {
		t.Error("expected error for length mismatch")
	}
}
