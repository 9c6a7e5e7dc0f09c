package calculator

import "errors"

// CalculateSMA computes the simple moving average of the last `period` prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// EMASeries computes the exponential moving average over the full price
// slice. The returned slice is aligned with prices; entries before index
// period-1 are zero and must not be read. The first valid value is the
// SMA seed.
func EMASeries(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(prices) < period {
		return nil, errors.New("not enough data for EMA calculation")
	}
	out := make([]float64, len(prices))
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	out[period-1] = sum / float64(period)
	k := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		out[i] = out[i-1] + k*(prices[i]-out[i-1])
	}
	return out, nil
}

// CalculateEMA returns the latest exponential moving average value.
func CalculateEMA(prices []float64, period int) (float64, error) {
	series, err := EMASeries(prices, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}
