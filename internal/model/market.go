package model

import "time"

// Interval identifies the bar interval of a price series.
type Interval string

const (
	IntervalDaily  Interval = "1d"
	IntervalWeekly Interval = "1wk"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the price history for one symbol at one interval.
// Bars are strictly increasing by timestamp with no duplicates; the
// provider normalizes raw data before building a series. A series is
// immutable after construction.
type PriceSeries struct {
	Symbol    string
	Interval  Interval
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Highs extracts the high column.
func (s *PriceSeries) Highs() []float64 {
	highs := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		highs[i] = b.High
	}
	return highs
}

// Lows extracts the low column.
func (s *PriceSeries) Lows() []float64 {
	lows := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		lows[i] = b.Low
	}
	return lows
}

// Volumes extracts the volume column.
func (s *PriceSeries) Volumes() []float64 {
	vols := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		vols[i] = b.Volume
	}
	return vols
}

// LastClose returns the most recent close, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
