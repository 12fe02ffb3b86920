package settlement

// PeriodRow is one settlement period of per-row output. This is the
// primary artifact for "what happened" in a settlement run; the CSV
// writer and the API both render it.
//
// SettledPrice is the price the fee was actually computed with: the
// user price when an agent sits between the market and the consumer,
// otherwise the clearing price.
type PeriodRow struct {
	Period int

	Bid      float64
	Baseline float64
	Output   float64
	Actual   float64

	Effective float64

	ClearingPrice float64
	SettledPrice  float64

	Revenue    float64
	CumRevenue float64
}
