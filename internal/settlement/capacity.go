package settlement

import (
	"dr-settlement/internal/model"
)

// EffectiveCapacity converts bid, baseline and output vectors into the
// effective capacity credited for settlement.
//
// Per period: actual = baseline - output. Actual capacity at or below
// bid*BidThresholdRate counts in full; the excess above the threshold
// is credited at ExcessCreditRate on the margin. The piecewise rule is
// continuous at the threshold and discourages overstated baselines.
func EffectiveCapacity(rules Rules, bid, baseline, output model.Series) (model.Series, error) {
	if err := model.SameLen(bid, baseline, output); err != nil {
		return nil, err
	}
	effective := make(model.Series, len(bid))
	for i := range bid {
		actual := baseline[i] - output[i]
		threshold := bid[i] * rules.BidThresholdRate
		if actual <= threshold {
			effective[i] = actual
		} else {
			effective[i] = threshold + (actual-threshold)*rules.ExcessCreditRate
		}
	}
	return effective, nil
}
