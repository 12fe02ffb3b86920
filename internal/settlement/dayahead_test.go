package settlement

import (
	"testing"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T) *pricing.Provider {
	t.Helper()
	p, err := pricing.NewProvider(model.PriceBounds{}, nil)
	require.NoError(t, err)
	return p
}

func TestDayAhead_NoAgent(t *testing.T) {
	res, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0, 180},
		Outputs:   model.Series{0, 30},
	}, pricing.DefaultSource())
	require.NoError(t, err)

	assert.Equal(t, model.Series{0, 150}, res.EffectiveCapacity)
	assert.Equal(t, model.Series{90, 90}, res.ClearingPrice)
	assert.Nil(t, res.UserPrice)

	// settlement = 150*90 = 13500; assessment = (90-0)*99 = 8910
	assert.InDelta(t, 13500, res.SettlementFee, 1e-9)
	assert.InDelta(t, 8910, res.AssessmentFee, 1e-9)
	assert.InDelta(t, 4590, res.NetRevenue, 1e-9)
	assert.Equal(t, model.OutcomeProfit, res.Outcome)
}

func TestDayAhead_AgentFloorShare(t *testing.T) {
	res, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0, 180},
		Outputs:   model.Series{0, 30},
		Agent: &model.AgentContract{
			Mode:            model.AgentFloorShare,
			FloorPrice:      50,
			ShareRatio:      0.8,
			AssessmentShare: 0.5,
		},
	}, pricing.DefaultSource())
	require.NoError(t, err)

	// user price = 50 + (90-50)*0.8 = 82 in every period
	assert.InDeltaSlice(t, []float64{82, 82}, res.UserPrice, 1e-9)

	// settlement uses the user price: 150*82 = 12300
	assert.InDelta(t, 12300, res.SettlementFee, 1e-9)
	// the user bears half the full 8910 penalty
	assert.InDelta(t, 4455, res.AssessmentFee, 1e-9)
	assert.InDelta(t, 7845, res.NetRevenue, 1e-9)
}

func TestDayAhead_AgentFixedPrice(t *testing.T) {
	res, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0, 180},
		Outputs:   model.Series{0, 30},
		Agent: &model.AgentContract{
			Mode:            model.AgentFixedPrice,
			FloorPrice:      60,
			AssessmentShare: 0.5,
		},
	}, pricing.DefaultSource())
	require.NoError(t, err)

	assert.Equal(t, model.Series{60, 60}, res.UserPrice)
	assert.InDelta(t, 9000, res.SettlementFee, 1e-9)
	assert.InDelta(t, 4455, res.AssessmentFee, 1e-9)
	assert.InDelta(t, 4545, res.NetRevenue, 1e-9)
}

func TestDayAhead_AssessmentUsesClearingPriceNotUserPrice(t *testing.T) {
	// With full assessment share the agent-case penalty must match the
	// no-agent penalty exactly, whatever the user price is.
	base := DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0, 180},
		Outputs:   model.Series{0, 30},
	}

	plain, err := DayAhead(DefaultRules(), testProvider(t), base, pricing.DefaultSource())
	require.NoError(t, err)

	withAgent := base
	withAgent.Agent = &model.AgentContract{
		Mode:            model.AgentFixedPrice,
		FloorPrice:      10,
		AssessmentShare: 1,
	}
	agent, err := DayAhead(DefaultRules(), testProvider(t), withAgent, pricing.DefaultSource())
	require.NoError(t, err)

	assert.InDelta(t, plain.AssessmentFee, agent.AssessmentFee, 1e-9)
}

func TestDayAhead_InvalidAgentMode(t *testing.T) {
	_, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100},
		Baselines: model.Series{0},
		Outputs:   model.Series{0},
		Agent: &model.AgentContract{
			Mode:            "percent_skim",
			AssessmentShare: 0.5,
		},
	}, pricing.DefaultSource())
	require.Error(t, err)
}

func TestDayAhead_LengthMismatch(t *testing.T) {
	_, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0},
		Outputs:   model.Series{0, 30},
	}, pricing.DefaultSource())
	require.ErrorIs(t, err, model.ErrLengthMismatch)
}

func TestDayAhead_PeriodRows(t *testing.T) {
	res, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100, 150},
		Baselines: model.Series{0, 180},
		Outputs:   model.Series{0, 30},
	}, pricing.DefaultSource())
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 0, res.Rows[0].Period)
	assert.InDelta(t, 0, res.Rows[0].Revenue, 1e-9)
	assert.InDelta(t, 150, res.Rows[1].Actual, 1e-9)
	assert.InDelta(t, 13500, res.Rows[1].Revenue, 1e-9)
	assert.InDelta(t, 13500, res.Rows[1].CumRevenue, 1e-9)
}

func TestDayAhead_ForecastPriceSource(t *testing.T) {
	_, err := DayAhead(DefaultRules(), testProvider(t), DayAheadParams{
		Bids:      model.Series{100},
		Baselines: model.Series{0},
		Outputs:   model.Series{0},
	}, pricing.Source{Mode: pricing.ModeForecast})
	require.ErrorIs(t, err, pricing.ErrForecastNotImplemented)
}
