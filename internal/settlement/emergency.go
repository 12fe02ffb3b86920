package settlement

import (
	"errors"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"
)

// EmergencyResult is the settled emergency response revenue. Emergency
// dispatch is compensated at a steep discount to the day-ahead market.
type EmergencyResult struct {
	Capacity       model.Series
	ClearingPrice  model.Series
	EmergencyPrice model.Series
	PriceMeta      *pricing.Result
	Revenue        float64
}

// Emergency settles the emergency response product: per period the
// emergency price is the clearing price times EmergencyPriceRate, and
// revenue is the sum of dispatched capacity times emergency price.
func Emergency(rules Rules, provider *pricing.Provider, capacity model.Series, src pricing.Source) (*EmergencyResult, error) {
	if len(capacity) == 0 {
		return nil, errors.New("emergency capacity vector must not be empty")
	}

	priceRes, err := provider.Generate(len(capacity), src)
	if err != nil {
		return nil, err
	}

	emergency := make(model.Series, len(capacity))
	for i, p := range priceRes.Prices {
		emergency[i] = p * rules.EmergencyPriceRate
	}

	revenue, err := SettlementFee(capacity, emergency)
	if err != nil {
		return nil, err
	}

	return &EmergencyResult{
		Capacity:       capacity.Clone(),
		ClearingPrice:  priceRes.Prices,
		EmergencyPrice: emergency,
		PriceMeta:      priceRes,
		Revenue:        revenue,
	}, nil
}
