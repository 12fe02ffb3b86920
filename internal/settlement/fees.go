package settlement

import (
	"dr-settlement/internal/model"
)

// SettlementFee is the total response revenue: the sum over periods of
// effective capacity times price.
func SettlementFee(effective, price model.Series) (float64, error) {
	if err := model.SameLen(effective, price); err != nil {
		return 0, err
	}
	total := 0.0
	for i := range effective {
		total += effective[i] * price[i]
	}
	return total, nil
}

// AssessmentFee is the shortfall penalty. Per period the assessment
// price is price*AssessmentPriceRate and the shortfall quantity is
// max(bid*ShortfallRate - effective, 0): a penalty accrues only when
// delivered effective capacity falls short of the shortfall threshold.
// The result is always >= 0.
func AssessmentFee(rules Rules, bid, effective, price model.Series) (float64, error) {
	if err := model.SameLen(bid, effective, price); err != nil {
		return 0, err
	}
	total := 0.0
	for i := range bid {
		shortfall := bid[i]*rules.ShortfallRate - effective[i]
		if shortfall <= 0 {
			continue
		}
		total += shortfall * price[i] * rules.AssessmentPriceRate
	}
	return total, nil
}
