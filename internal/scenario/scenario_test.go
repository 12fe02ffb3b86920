package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"dr-settlement/internal/model"
	"dr-settlement/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ListAndStringVectors(t *testing.T) {
	path := writeScenario(t, `
day_ahead:
  bids: [100, 150, 200]
  baselines: "0, 180, 250"
  outputs: 0,30,10
  agent:
    mode: floor_share
    floor_price: 60
    share_ratio: 0.5
    assessment_share: 1
`)

	s, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s.DayAhead)

	assert.Equal(t, Vector{100, 150, 200}, s.DayAhead.Bids)
	assert.Equal(t, Vector{0, 180, 250}, s.DayAhead.Baselines)
	assert.Equal(t, Vector{0, 30, 10}, s.DayAhead.Outputs)

	contract := s.DayAhead.Agent.ToContract()
	require.NotNil(t, contract)
	assert.Equal(t, model.AgentFloorShare, contract.Mode)
	assert.Equal(t, 60.0, contract.FloorPrice)
	assert.Equal(t, 0.5, contract.ShareRatio)
}

func TestLoad_MonthlySection(t *testing.T) {
	path := writeScenario(t, `
monthly_reserve:
  agent_state: 1
  gamma: 0.2
  day_ahead_bids: [100, 150, 200, 120]
  day_ahead_triggered: 1
  reserve_awards: [110, 95, 140, 105]
  monthly_price: 30
`)

	s, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s.Monthly)

	assert.Equal(t, 1, s.Monthly.AgentState)
	assert.Equal(t, 0.2, s.Monthly.Gamma)
	assert.Equal(t, Vector{110, 95, 140, 105}, s.Monthly.ReserveAwards)
	assert.Equal(t, 30.0, s.Monthly.MonthlyPrice)
}

func TestLoad_BadVectorEntry(t *testing.T) {
	path := writeScenario(t, `
emergency:
  capacity: "50, eighty, 120"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"eighty"`)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPriceScenarioToSource(t *testing.T) {
	var nilPrices *PriceScenario
	src, err := nilPrices.ToSource()
	require.NoError(t, err)
	assert.Equal(t, pricing.ModeDefault, src.Mode)

	src, err = (&PriceScenario{Mode: "custom", Custom: Vector{90, 60}}).ToSource()
	require.NoError(t, err)
	assert.Equal(t, pricing.ModeCustom, src.Mode)
	assert.Equal(t, model.Series{90, 60}, src.Custom)

	seed := int64(42)
	src, err = (&PriceScenario{
		Mode:         "random",
		Base:         Vector{2.5},
		Fluctuation:  0.3,
		Distribution: "correlated_walk",
		Correlation:  0.7,
		Seed:         &seed,
	}).ToSource()
	require.NoError(t, err)
	require.NotNil(t, src.Params)
	assert.Equal(t, pricing.DistCorrelatedWalk, src.Params.Distribution)
	assert.Equal(t, int64(42), *src.Params.Seed)

	_, err = (&PriceScenario{Mode: "oracle"}).ToSource()
	assert.Error(t, err)
}

func TestFlag(t *testing.T) {
	b, err := Flag("agent_state", 0)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = Flag("agent_state", 1)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Flag("agent_state", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent_state")
}
