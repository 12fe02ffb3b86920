package analysis

import (
	"math"

	"dr-settlement/internal/model"
)

// PriceStatistics summarizes a generated clearing-price vector against
// the base prices it was synthesized from. Purely for reporting; it has
// no effect on settlement math.
//
// Deviations are percentages of the per-period base price. A period
// with a zero base contributes a zero deviation.
type PriceStatistics struct {
	Count int

	Mean   float64
	Stddev float64
	Max    float64
	Min    float64

	// DeviationsPct holds each price's percentage deviation from its base.
	DeviationsPct model.Series

	MeanAbsDeviationPct float64
	// MaxOverDeviationPct is the largest deviation above base (>= 0),
	// MaxUnderDeviationPct the largest below it (<= 0).
	MaxOverDeviationPct  float64
	MaxUnderDeviationPct float64
}

// ComputePriceStatistics analyzes prices against base. A base shorter
// than the price vector is tiled to match, the same length
// reconciliation the price provider applies.
func ComputePriceStatistics(prices, base model.Series) (*PriceStatistics, error) {
	if len(prices) == 0 {
		return nil, model.ErrEmptySeries
	}
	tiledBase, err := base.TileTo(len(prices))
	if err != nil {
		return nil, err
	}

	stats := &PriceStatistics{
		Count: len(prices),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}

	for _, v := range prices {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = prices.Mean()

	sumSq := 0.0
	for _, v := range prices {
		d := v - stats.Mean
		sumSq += d * d
	}
	stats.Stddev = math.Sqrt(sumSq / float64(len(prices)))

	stats.DeviationsPct = make(model.Series, len(prices))
	sumAbs := 0.0
	for i, v := range prices {
		var dev float64
		if tiledBase[i] != 0 {
			dev = (v - tiledBase[i]) / tiledBase[i] * 100
		}
		stats.DeviationsPct[i] = dev
		sumAbs += math.Abs(dev)
		if dev > stats.MaxOverDeviationPct {
			stats.MaxOverDeviationPct = dev
		}
		if dev < stats.MaxUnderDeviationPct {
			stats.MaxUnderDeviationPct = dev
		}
	}
	stats.MeanAbsDeviationPct = sumAbs / float64(len(prices))

	return stats, nil
}
