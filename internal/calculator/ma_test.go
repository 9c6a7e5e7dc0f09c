package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		name   string
		period int
		want   float64
	}{
		{"last five", 5, 8},
		{"full window", 10, 5.5},
		{"single", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSMA(prices, tt.period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("SMA(%d) = %f, want %f", tt.period, got, tt.want)
			}
		})
	}
}

func TestCalculateSMAErrors(t *testing.T) {
	if _, err := CalculateSMA([]float64{1, 2}, 5); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := CalculateSMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestEMASeriesSeedAndStep(t *testing.T) {
	// period 3: seed = SMA(1,2,3) = 2 at index 2, then k = 0.5
	series, err := EMASeries([]float64{1, 2, 3, 4}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 4 {
		t.Fatalf("series length = %d, want 4", len(series))
	}
	if series[0] != 0 || series[1] != 0 {
		t.Errorf("entries before seed should be zero, got %v", series[:2])
	}
	if !almostEqual(series[2], 2) {
		t.Errorf("seed = %f, want 2", series[2])
	}
	if !almostEqual(series[3], 3) {
		t.Errorf("step = %f, want 3", series[3])
	}
}

func TestCalculateEMAConstantSeries(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 5
	}
	got, err := CalculateEMA(prices, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 5) {
		t.Errorf("EMA of constant series = %f, want 5", got)
	}
}

func TestCalculateEMAShortInput(t *testing.T) {
	if _, err := CalculateEMA([]float64{1, 2, 3}, 10); err == nil {
		t.Error("expected error for short input")
	}
}
