package settlement

import (
	"errors"

	"dr-settlement/internal/model"
)

// MonthlyParams are the inputs to the monthly reserve product.
//
// ReserveAwards is the awarded reserve capacity per period (kW).
// DayAheadBids is the capacity already bid into the day-ahead market;
// when DayAheadTriggered is set, reserve volume is capped at its mean,
// since capacity dispatched day-ahead is not available as reserve.
// MonthlyPrice is the required scalar reserve price (currency per kW).
// Gamma is the agent's revenue share in (0,1), required when Agent is
// set and ignored otherwise.
type MonthlyParams struct {
	Agent             bool
	Gamma             float64
	DayAheadBids      model.Series
	DayAheadTriggered bool
	ReserveAwards     model.Series
	MonthlyPrice      float64
}

func (p MonthlyParams) Validate() error {
	if len(p.DayAheadBids) == 0 {
		return errors.New("day-ahead bid vector must not be empty")
	}
	if len(p.ReserveAwards) == 0 {
		return errors.New("reserve award vector must not be empty")
	}
	if p.MonthlyPrice <= 0 {
		return errors.New("monthly reserve price is required and must be > 0")
	}
	if p.Agent && (p.Gamma <= 0 || p.Gamma >= 1) {
		return errors.New("agent gamma must be in (0, 1)")
	}
	return nil
}

// MonthlyResult is the settled monthly reserve revenue.
type MonthlyResult struct {
	// ReserveVolume is the representative reserve capacity (kW): the
	// trimmed mean of the awards, capped at the mean day-ahead bid
	// when the day-ahead market was triggered.
	ReserveVolume float64
	MonthlyPrice  float64
	BaseRevenue   float64
	// UserRevenue is BaseRevenue less the agent's share.
	UserRevenue float64
	AgentFee    float64
	Gamma       float64
}

// MonthlyReserve settles the monthly reserve product. All validation
// runs before any computation; a failed call returns no result.
func MonthlyReserve(params MonthlyParams) (*MonthlyResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	volume := TrimmedMean(params.ReserveAwards)
	if params.DayAheadTriggered {
		if limit := params.DayAheadBids.Mean(); limit < volume {
			volume = limit
		}
	}

	base := volume * params.MonthlyPrice

	res := &MonthlyResult{
		ReserveVolume: volume,
		MonthlyPrice:  params.MonthlyPrice,
		BaseRevenue:   base,
		UserRevenue:   base,
	}
	if params.Agent {
		res.Gamma = params.Gamma
		res.AgentFee = base * params.Gamma
		res.UserRevenue = base * (1 - params.Gamma)
	}
	return res, nil
}
