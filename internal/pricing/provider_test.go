package pricing

import (
	"testing"

	"dr-settlement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, bounds model.PriceBounds) *Provider {
	t.Helper()
	p, err := NewProvider(bounds, nil)
	require.NoError(t, err)
	return p
}

func TestGenerate_DefaultPatternTruncates(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	res, err := p.Generate(3, DefaultSource())
	require.NoError(t, err)
	assert.Equal(t, model.Series{90, 90, 90}, res.Prices)
	assert.False(t, res.Adjusted)
}

func TestGenerate_DefaultPatternTiles(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	res, err := p.Generate(8, DefaultSource())
	require.NoError(t, err)
	assert.Equal(t, model.Series{90, 90, 90, 80, 80, 90, 90, 90}, res.Prices)
}

func TestGenerate_NonPositivePeriodCount(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	_, err := p.Generate(0, DefaultSource())
	require.ErrorIs(t, err, ErrInvalidPeriodCount)

	_, err = p.Generate(-4, DefaultSource())
	require.ErrorIs(t, err, ErrInvalidPeriodCount)
}

func TestGenerate_CustomTilesShortVector(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{Floor: 0, Ceiling: 100})

	res, err := p.Generate(5, CustomSource(model.Series{90, 60}))
	require.NoError(t, err)
	assert.Equal(t, model.Series{90, 60, 90, 60, 90}, res.Prices)
	assert.False(t, res.Adjusted)
	assert.Zero(t, res.AdjustedPeriods)
}

func TestGenerate_CustomTruncatesLongVector(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	res, err := p.Generate(2, CustomSource(model.Series{1, 2, 2.5}))
	require.NoError(t, err)
	assert.Equal(t, model.Series{1, 2}, res.Prices)
	assert.False(t, res.Adjusted)
}

func TestGenerate_CustomClampsOutOfRangeValues(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	res, err := p.Generate(3, CustomSource(model.Series{5, -1, 2}))
	require.NoError(t, err)
	assert.Equal(t, model.Series{3, 0, 2}, res.Prices)
	assert.True(t, res.Adjusted)
	assert.Equal(t, 2, res.AdjustedPeriods)
}

func TestGenerate_CustomEmptyVectorRejected(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	_, err := p.Generate(3, CustomSource(nil))
	require.Error(t, err)
}

func TestGenerate_ForecastNotImplemented(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	_, err := p.Generate(3, Source{Mode: ModeForecast})
	require.ErrorIs(t, err, ErrForecastNotImplemented)
}

func TestGenerate_UnknownModeRejected(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	_, err := p.Generate(3, Source{Mode: "oracle"})
	require.Error(t, err)
}

func TestGenerate_RandomRequiresParams(t *testing.T) {
	p := newTestProvider(t, model.PriceBounds{})

	_, err := p.Generate(3, Source{Mode: ModeRandom})
	require.Error(t, err)
}
