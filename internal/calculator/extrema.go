package calculator

import (
	"errors"
	"math"
)

// WindowHigh returns the maximum of values[end-window+1 .. end].
func WindowHigh(values []float64, end, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if end >= len(values) || end-window+1 < 0 {
		return 0, errors.New("not enough data for window high")
	}
	high := math.Inf(-1)
	for i := end - window + 1; i <= end; i++ {
		if values[i] > high {
			high = values[i]
		}
	}
	return high, nil
}

// WindowLow returns the minimum of values[end-window+1 .. end].
func WindowLow(values []float64, end, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if end >= len(values) || end-window+1 < 0 {
		return 0, errors.New("not enough data for window low")
	}
	low := math.Inf(1)
	for i := end - window + 1; i <= end; i++ {
		if values[i] < low {
			low = values[i]
		}
	}
	return low, nil
}

// HighestHigh returns the maximum over the trailing window.
func HighestHigh(values []float64, window int) (float64, error) {
	return WindowHigh(values, len(values)-1, window)
}

// LowestLow returns the minimum over the trailing window.
func LowestLow(values []float64, window int) (float64, error) {
	return WindowLow(values, len(values)-1, window)
}

// RangePosition returns where current sits within [low, high], clamped
// to 0..1. A degenerate range (high == low) reports the midpoint.
func RangePosition(current, high, low float64) (float64, error) {
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	if high == low {
		return 0.5, nil
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
