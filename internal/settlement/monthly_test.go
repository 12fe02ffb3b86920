package settlement

import (
	"testing"

	"dr-settlement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyReserve_AgentSplit(t *testing.T) {
	// Trimmed mean of three equal awards is 100; base = 100*10 = 1000.
	res, err := MonthlyReserve(MonthlyParams{
		Agent:         true,
		Gamma:         0.2,
		DayAheadBids:  model.Series{75, 85, 95, 80},
		ReserveAwards: model.Series{100, 100, 100},
		MonthlyPrice:  10,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1000, res.BaseRevenue, 1e-9)
	assert.InDelta(t, 800, res.UserRevenue, 1e-9)
	assert.InDelta(t, 200, res.AgentFee, 1e-9)
	assert.InDelta(t, 0.2, res.Gamma, 1e-9)
}

func TestMonthlyReserve_NoAgentKeepsFullRevenue(t *testing.T) {
	res, err := MonthlyReserve(MonthlyParams{
		DayAheadBids:  model.Series{75, 85, 95, 80},
		ReserveAwards: model.Series{110, 95, 140, 105},
		MonthlyPrice:  5,
	})
	require.NoError(t, err)

	// Trimmed mean drops 95 and 140 -> mean(110, 105) = 107.5.
	assert.InDelta(t, 107.5, res.ReserveVolume, 1e-9)
	assert.InDelta(t, 537.5, res.BaseRevenue, 1e-9)
	assert.InDelta(t, res.BaseRevenue, res.UserRevenue, 1e-9)
	assert.Zero(t, res.AgentFee)
	assert.Zero(t, res.Gamma)
}

func TestMonthlyReserve_DayAheadCapsVolume(t *testing.T) {
	res, err := MonthlyReserve(MonthlyParams{
		DayAheadBids:      model.Series{75, 85, 95, 80}, // mean 83.75
		DayAheadTriggered: true,
		ReserveAwards:     model.Series{110, 95, 140, 105}, // trimmed mean 107.5
		MonthlyPrice:      5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 83.75, res.ReserveVolume, 1e-9)
	assert.InDelta(t, 418.75, res.BaseRevenue, 1e-9)
}

func TestMonthlyReserve_DayAheadCapOnlyBinds(t *testing.T) {
	// A cap above the trimmed mean leaves the volume alone.
	res, err := MonthlyReserve(MonthlyParams{
		DayAheadBids:      model.Series{500, 500},
		DayAheadTriggered: true,
		ReserveAwards:     model.Series{110, 95, 140, 105},
		MonthlyPrice:      5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 107.5, res.ReserveVolume, 1e-9)
}

func TestMonthlyReserve_Validation(t *testing.T) {
	valid := MonthlyParams{
		DayAheadBids:  model.Series{80},
		ReserveAwards: model.Series{100},
		MonthlyPrice:  5,
	}

	missingBids := valid
	missingBids.DayAheadBids = nil
	_, err := MonthlyReserve(missingBids)
	require.Error(t, err)

	missingAwards := valid
	missingAwards.ReserveAwards = nil
	_, err = MonthlyReserve(missingAwards)
	require.Error(t, err)

	missingPrice := valid
	missingPrice.MonthlyPrice = 0
	_, err = MonthlyReserve(missingPrice)
	require.Error(t, err)

	badGamma := valid
	badGamma.Agent = true
	badGamma.Gamma = 1.0
	_, err = MonthlyReserve(badGamma)
	require.Error(t, err)
}
