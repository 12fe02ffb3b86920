package model

// Outcome is a human-friendly classification of a settlement result.
// Keep these values stable; they are intended for CSV and API output.
type Outcome string

const (
	OutcomeProfit    Outcome = "PROFIT"
	OutcomeLoss      Outcome = "LOSS"
	OutcomeBreakEven Outcome = "BREAK_EVEN"
)

func OutcomeFromNetRevenue(net float64) Outcome {
	switch {
	case net > 0:
		return OutcomeProfit
	case net < 0:
		return OutcomeLoss
	default:
		return OutcomeBreakEven
	}
}
