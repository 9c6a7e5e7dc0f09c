package strategy

import "fmt"

// Indicator family names, used as weight table keys and result names.
const (
	FamilyTrendCloud    = "trend_cloud"
	FamilyMovingAverage = "moving_average"
	FamilyMomentum      = "momentum"
	FamilyVolume        = "volume"
	FamilyRetracement   = "retracement"
	FamilyFundamental   = "fundamental"
)

// NeutralScore is the fallback score for indicators that cannot be computed.
const NeutralScore = 0.5

// WeightTable maps an indicator family to its non-negative weight. The
// composite scorer divides by the sum of weights actually applied, so the
// table does not have to sum to 1.0.
type WeightTable map[string]float64

// DefaultWeights returns the canonical weighting scheme.
func DefaultWeights() WeightTable {
	return WeightTable{
		FamilyTrendCloud:    0.25,
		FamilyMovingAverage: 0.20,
		FamilyMomentum:      0.20,
		FamilyVolume:        0.15,
		FamilyRetracement:   0.10,
		FamilyFundamental:   0.10,
	}
}

// Validate rejects negative weights and an all-zero table.
func (w WeightTable) Validate() error {
	total := 0.0
	for name, weight := range w {
		if weight < 0 {
			return fmt.Errorf("weight for %s is negative: %f", name, weight)
		}
		total += weight
	}
	if total <= 0 {
		return fmt.Errorf("weight table total must be positive, got %f", total)
	}
	return nil
}
