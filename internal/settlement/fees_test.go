package settlement

import (
	"testing"

	"dr-settlement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementFee_SumsCapacityTimesPrice(t *testing.T) {
	fee, err := SettlementFee(
		model.Series{0, 150},
		model.Series{90, 90},
	)
	require.NoError(t, err)
	assert.InDelta(t, 13500, fee, 1e-9)
}

func TestSettlementFee_LengthMismatch(t *testing.T) {
	_, err := SettlementFee(model.Series{1, 2}, model.Series{90})
	require.ErrorIs(t, err, model.ErrLengthMismatch)
}

func TestAssessmentFee_TriggersBelowNinetyPercentOfBid(t *testing.T) {
	rules := DefaultRules()

	// Period 1: shortfall = 0.9*100 - 0 = 90 at price 90*1.1 = 99.
	// Period 2: 150 >= 0.9*150, no penalty.
	fee, err := AssessmentFee(rules,
		model.Series{100, 150},
		model.Series{0, 150},
		model.Series{90, 90},
	)
	require.NoError(t, err)
	assert.InDelta(t, 8910, fee, 1e-9)
}

func TestAssessmentFee_ZeroWhenDeliveredInFull(t *testing.T) {
	rules := DefaultRules()

	fee, err := AssessmentFee(rules,
		model.Series{100, 150},
		model.Series{100, 160},
		model.Series{90, 90},
	)
	require.NoError(t, err)
	assert.Zero(t, fee)
}

func TestAssessmentFee_NeverNegative(t *testing.T) {
	rules := DefaultRules()

	// Over-delivery must not turn the penalty into a credit.
	fee, err := AssessmentFee(rules,
		model.Series{10, 10, 10},
		model.Series{500, 0, 9},
		model.Series{90, 90, 90},
	)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fee, 0.0)
}

func TestAssessmentFee_LengthMismatch(t *testing.T) {
	rules := DefaultRules()

	_, err := AssessmentFee(rules,
		model.Series{100},
		model.Series{0, 150},
		model.Series{90, 90},
	)
	require.ErrorIs(t, err, model.ErrLengthMismatch)
}
