package calculator

import (
	"errors"
	"math"
)

// CalculateADX computes the Average Directional Index (Wilder) over the
// given period. Requires at least 2*period+1 bars for the first smoothed
// ADX value.
func CalculateADX(highs, lows, closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	n := len(closes)
	if len(highs) != n || len(lows) != n {
		return 0, errors.New("high/low/close length mismatch")
	}
	if n < 2*period+1 {
		return 0, errors.New("not enough data for ADX calculation")
	}

	trs := make([]float64, n-1)
	plusDM := make([]float64, n-1)
	minusDM := make([]float64, n-1)
	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i-1] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i-1] = downMove
		}
		tr := highs[i] - lows[i]
		if v := math.Abs(highs[i] - closes[i-1]); v > tr {
			tr = v
		}
		if v := math.Abs(lows[i] - closes[i-1]); v > tr {
			tr = v
		}
		trs[i-1] = tr
	}

	// Wilder smoothing, seeded with plain sums over the first period.
	var smTR, smPlus, smMinus float64
	for i := 0; i < period; i++ {
		smTR += trs[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := func() float64 {
		if smTR == 0 {
			return 0
		}
		plusDI := 100 * smPlus / smTR
		minusDI := 100 * smMinus / smTR
		if plusDI+minusDI == 0 {
			return 0
		}
		return 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI)
	}

	dxs := []float64{dx()}
	for i := period; i < len(trs); i++ {
		smTR = smTR - smTR/float64(period) + trs[i]
		smPlus = smPlus - smPlus/float64(period) + plusDM[i]
		smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		dxs = append(dxs, dx())
	}

	// ADX: average of the first period DX values, then Wilder-smoothed.
	adx := 0.0
	for i := 0; i < period; i++ {
		adx += dxs[i]
	}
	adx /= float64(period)
	for i := period; i < len(dxs); i++ {
		adx = (adx*float64(period-1) + dxs[i]) / float64(period)
	}
	return adx, nil
}
