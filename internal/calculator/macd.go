package calculator

import "errors"

// CalculateMACD computes the MACD line (fast EMA minus slow EMA) and its
// signal line (EMA of the MACD line) and returns their latest values.
func CalculateMACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (line, signal float64, err error) {
	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 {
		return 0, 0, errors.New("periods must be positive")
	}
	if fastPeriod >= slowPeriod {
		return 0, 0, errors.New("fast period must be shorter than slow period")
	}
	if len(closes) < slowPeriod+signalPeriod {
		return 0, 0, errors.New("not enough data for MACD calculation")
	}

	fastSeries, err := EMASeries(closes, fastPeriod)
	if err != nil {
		return 0, 0, err
	}
	slowSeries, err := EMASeries(closes, slowPeriod)
	if err != nil {
		return 0, 0, err
	}

	// MACD line is only defined where the slow EMA is.
	diff := make([]float64, 0, len(closes)-slowPeriod+1)
	for i := slowPeriod - 1; i < len(closes); i++ {
		diff = append(diff, fastSeries[i]-slowSeries[i])
	}

	signalSeries, err := EMASeries(diff, signalPeriod)
	if err != nil {
		return 0, 0, err
	}
	return diff[len(diff)-1], signalSeries[len(signalSeries)-1], nil
}
