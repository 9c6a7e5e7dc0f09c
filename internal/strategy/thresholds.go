package strategy

import (
	"fmt"

	"TickerSentry/internal/model"
)

// Thresholds holds the six recommendation band cut-points. Each value is
// the upper bound of its band; a score equal to a cut-point belongs to the
// next band up. The StrongBuy value is carried for the configuration
// surface and ordering validation but the STRONG_BUY band itself is
// unbounded above the Buy cut.
type Thresholds struct {
	StrongSell float64
	Sell       float64
	Warning    float64
	Neutral    float64
	Buy        float64
	StrongBuy  float64
}

// DefaultThresholds returns the stock cut-points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongSell: 0.25,
		Sell:       0.35,
		Warning:    0.45,
		Neutral:    0.55,
		Buy:        0.65,
		StrongBuy:  0.75,
	}
}

// Validate rejects cut-points that are not strictly increasing.
func (t Thresholds) Validate() error {
	cuts := []struct {
		name  string
		value float64
	}{
		{"strong_sell", t.StrongSell},
		{"sell", t.Sell},
		{"warning", t.Warning},
		{"neutral", t.Neutral},
		{"buy", t.Buy},
		{"strong_buy", t.StrongBuy},
	}
	for i := 1; i < len(cuts); i++ {
		if cuts[i].value <= cuts[i-1].value {
			return fmt.Errorf("threshold %s (%.3f) must be greater than %s (%.3f)",
				cuts[i].name, cuts[i].value, cuts[i-1].name, cuts[i-1].value)
		}
	}
	return nil
}

// Recommend maps a composite score to its band.
func (t Thresholds) Recommend(score float64) model.Recommendation {
	switch {
	case score < t.StrongSell:
		return model.StrongSell
	case score < t.Sell:
		return model.Sell
	case score < t.Warning:
		return model.Warning
	case score < t.Neutral:
		return model.Neutral
	case score < t.Buy:
		return model.Buy
	default:
		return model.StrongBuy
	}
}
