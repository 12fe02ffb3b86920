package models

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PriceMeta reports how a clearing-price vector was produced and
// whether any value or fluctuation range was adjusted to stay inside
// the configured bounds.
type PriceMeta struct {
	Mode            string  `json:"mode"`
	Distribution    string  `json:"distribution,omitempty"`
	Adjusted        bool    `json:"adjusted"`
	AdjustedPeriods int     `json:"adjusted_periods,omitempty"`
	MeanBasePrice   float64 `json:"mean_base_price"`
}

// PeriodRow is one settlement period in a day-ahead run.
type PeriodRow struct {
	Period        int     `json:"period"`
	Bid           float64 `json:"bid"`
	Baseline      float64 `json:"baseline"`
	Output        float64 `json:"output"`
	Actual        float64 `json:"actual"`
	Effective     float64 `json:"effective"`
	ClearingPrice float64 `json:"clearing_price"`
	SettledPrice  float64 `json:"settled_price"`
	Revenue       float64 `json:"revenue"`
	CumRevenue    float64 `json:"cum_revenue"`
}

// DayAheadResponse is the response for a day-ahead settlement run.
// Fees and revenue are in currency; capacity vectors are kW.
type DayAheadResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	EffectiveCapacity []float64 `json:"effective_capacity"`
	ClearingPrice     []float64 `json:"clearing_price"`
	UserPrice         []float64 `json:"user_price,omitempty"`
	PriceMeta         PriceMeta `json:"price_meta"`

	SettlementFee float64 `json:"settlement_fee"`
	AssessmentFee float64 `json:"assessment_fee"`
	NetRevenue    float64 `json:"net_revenue"`
	Outcome       string  `json:"outcome"`

	Periods []PeriodRow `json:"periods,omitempty"`
}

// MonthlyReserveResponse is the response for a monthly reserve run.
type MonthlyReserveResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	ReserveVolume float64 `json:"reserve_volume"`
	MonthlyPrice  float64 `json:"monthly_price"`
	BaseRevenue   float64 `json:"base_revenue"`
	UserRevenue   float64 `json:"user_revenue"`
	AgentFee      float64 `json:"agent_fee"`
	Gamma         float64 `json:"gamma"`
}

// EmergencyResponse is the response for an emergency settlement run.
type EmergencyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Capacity       []float64 `json:"capacity"`
	ClearingPrice  []float64 `json:"clearing_price"`
	EmergencyPrice []float64 `json:"emergency_price"`
	PriceMeta      PriceMeta `json:"price_meta"`

	Revenue float64 `json:"revenue"`
}

// PriceStatistics is the reporting block attached to generated prices.
type PriceStatistics struct {
	Count                int       `json:"count"`
	Mean                 float64   `json:"mean"`
	Stddev               float64   `json:"stddev"`
	Max                  float64   `json:"max"`
	Min                  float64   `json:"min"`
	DeviationsPct        []float64 `json:"deviations_pct"`
	MeanAbsDeviationPct  float64   `json:"mean_abs_deviation_pct"`
	MaxOverDeviationPct  float64   `json:"max_over_deviation_pct"`
	MaxUnderDeviationPct float64   `json:"max_under_deviation_pct"`
}

// GeneratePricesResponse is the response for POST /api/v1/prices/generate.
type GeneratePricesResponse struct {
	ID         string           `json:"id"`
	Prices     []float64        `json:"prices"`
	PriceMeta  PriceMeta        `json:"price_meta"`
	Statistics *PriceStatistics `json:"statistics,omitempty"`
}

// RulesResponse reports the active rule constants and price bounds.
type RulesResponse struct {
	BidThresholdRate    float64   `json:"bid_threshold_rate"`
	ExcessCreditRate    float64   `json:"excess_credit_rate"`
	AssessmentPriceRate float64   `json:"assessment_price_rate"`
	ShortfallRate       float64   `json:"shortfall_rate"`
	EmergencyPriceRate  float64   `json:"emergency_price_rate"`
	PriceFloor          float64   `json:"price_floor"`
	PriceCeiling        float64   `json:"price_ceiling"`
	DefaultPattern      []float64 `json:"default_pattern"`
}
