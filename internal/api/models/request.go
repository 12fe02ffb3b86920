package models

// PriceSourceRequest selects where the clearing price comes from.
// Exactly one mode applies; the random fields are read only when
// mode=="random".
type PriceSourceRequest struct {
	Mode string `json:"mode"` // default | custom | random | forecast

	// Custom price vector, currency per kW (mode=custom).
	Custom []float64 `json:"custom,omitempty"`

	// Random synthesis parameters (mode=random). Base accepts a single
	// entry as a scalar broadcast to every period.
	Base         []float64 `json:"base,omitempty"`
	Fluctuation  float64   `json:"fluctuation,omitempty"`  // fraction [0,1]
	Distribution string    `json:"distribution,omitempty"` // uniform | normal | correlated_walk
	Correlation  float64   `json:"correlation,omitempty"`  // [0,1], correlated_walk only
	Seed         *int64    `json:"seed,omitempty"`
}

// AgentRequest carries the agent contract terms for one settlement.
type AgentRequest struct {
	Mode            string  `json:"mode" binding:"required"` // floor_share | fixed_price
	FloorPrice      float64 `json:"floor_price"`
	ShareRatio      float64 `json:"share_ratio,omitempty"`
	AssessmentShare float64 `json:"assessment_share"`
}

// DayAheadRequest is the request body for POST /api/v1/settlement/day-ahead.
// All vectors are kW, one entry per settlement period, equal lengths.
type DayAheadRequest struct {
	Bids        []float64          `json:"bids" binding:"required"`
	Baselines   []float64          `json:"baselines" binding:"required"`
	Outputs     []float64          `json:"outputs" binding:"required"`
	PriceSource PriceSourceRequest `json:"price_source"`
	Agent       *AgentRequest      `json:"agent,omitempty"`
	Options     RunOptions         `json:"options,omitempty"`
}

// MonthlyReserveRequest is the request body for POST /api/v1/settlement/monthly-reserve.
// AgentState and DayAheadTriggered keep the rule set's 0/1 convention.
type MonthlyReserveRequest struct {
	AgentState        int       `json:"agent_state"`
	Gamma             float64   `json:"gamma,omitempty"`
	DayAheadBids      []float64 `json:"day_ahead_bids" binding:"required"`
	DayAheadTriggered int       `json:"day_ahead_triggered"`
	ReserveAwards     []float64 `json:"reserve_awards" binding:"required"`
	MonthlyPrice      *float64  `json:"monthly_price" binding:"required"`
}

// EmergencyRequest is the request body for POST /api/v1/settlement/emergency.
type EmergencyRequest struct {
	Capacity    []float64          `json:"capacity" binding:"required"`
	PriceSource PriceSourceRequest `json:"price_source"`
	Options     RunOptions         `json:"options,omitempty"`
}

// GeneratePricesRequest is the request body for POST /api/v1/prices/generate.
type GeneratePricesRequest struct {
	Periods     int                `json:"periods" binding:"required"`
	PriceSource PriceSourceRequest `json:"price_source"`
}

// RunOptions contains optional settlement run parameters.
type RunOptions struct {
	IncludePeriods bool `json:"include_periods,omitempty"` // default: false
}
