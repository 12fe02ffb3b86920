package settlement

import "errors"

// Rules holds the regulatory constants of the settlement rule set.
// Units are dimensionless rates applied to bids and prices.
//
// - BidThresholdRate: effective capacity at or below bid*rate counts in
//   full; anything above is credited at ExcessCreditRate on the margin.
// - AssessmentPriceRate: multiplier on the clearing price when pricing
//   a shortfall penalty.
// - ShortfallRate: delivering less than bid*rate triggers the penalty.
// - EmergencyPriceRate: emergency dispatch is compensated at this
//   fraction of the clearing price.
type Rules struct {
	BidThresholdRate    float64
	ExcessCreditRate    float64
	AssessmentPriceRate float64
	ShortfallRate       float64
	EmergencyPriceRate  float64
}

// DefaultRules returns the published rule constants.
func DefaultRules() Rules {
	return Rules{
		BidThresholdRate:    1.1,
		ExcessCreditRate:    0.5,
		AssessmentPriceRate: 1.1,
		ShortfallRate:       0.9,
		EmergencyPriceRate:  0.1,
	}
}

func (r Rules) Validate() error {
	if r.BidThresholdRate < 1 {
		return errors.New("BidThresholdRate must be >= 1")
	}
	if r.ExcessCreditRate < 0 || r.ExcessCreditRate > 1 {
		return errors.New("ExcessCreditRate must be in [0, 1]")
	}
	if r.AssessmentPriceRate <= 0 {
		return errors.New("AssessmentPriceRate must be > 0")
	}
	if r.ShortfallRate <= 0 || r.ShortfallRate > 1 {
		return errors.New("ShortfallRate must be in (0, 1]")
	}
	if r.EmergencyPriceRate <= 0 || r.EmergencyPriceRate > 1 {
		return errors.New("EmergencyPriceRate must be in (0, 1]")
	}
	return nil
}
