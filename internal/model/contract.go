package model

import "errors"

// AgentMode selects how an aggregation agent prices capacity for the
// end user in the day-ahead market.
type AgentMode string

const (
	// AgentFloorShare guarantees the user a floor price and passes
	// through a share of the clearing-price upside above it.
	AgentFloorShare AgentMode = "floor_share"
	// AgentFixedPrice pays the user a flat contract price regardless
	// of the clearing price.
	AgentFixedPrice AgentMode = "fixed_price"
)

// AgentContract describes the commercial terms between an aggregation
// agent and the end user for one settlement computation. It is supplied
// by the caller and never persisted.
//
// Units:
// - FloorPrice: currency per kW (floor under floor_share, the flat
//   user price under fixed_price)
// - ShareRatio: fraction (0,1] of clearing-price upside passed through
//   (floor_share only)
// - AssessmentShare: fraction (0,1] of the shortfall penalty the user
//   bears; the agent absorbs the remainder
type AgentContract struct {
	Mode            AgentMode
	FloorPrice      float64
	ShareRatio      float64
	AssessmentShare float64
}

func (a AgentContract) Validate() error {
	switch a.Mode {
	case AgentFloorShare:
		if a.ShareRatio <= 0 || a.ShareRatio > 1 {
			return errors.New("ShareRatio must be in (0, 1]")
		}
	case AgentFixedPrice:
		// ShareRatio is not used in this mode.
	default:
		return errors.New("agent mode must be floor_share or fixed_price")
	}
	if a.FloorPrice < 0 {
		return errors.New("FloorPrice must be >= 0")
	}
	if a.AssessmentShare <= 0 || a.AssessmentShare > 1 {
		return errors.New("AssessmentShare must be in (0, 1]")
	}
	return nil
}
