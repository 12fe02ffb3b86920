package pricing

import (
	"dr-settlement/internal/model"
)

// DefaultPattern is the fixed reference clearing-price cycle, in
// currency per kW. It is tiled and truncated to the requested period
// count and is not subject to the price bounds.
var DefaultPattern = model.Series{90, 90, 90, 80, 80, 90}

// Result is a generated clearing-price vector plus the metadata callers
// need for reporting: which mode produced it, whether any value or
// fluctuation range had to be adjusted to stay inside the bounds, and
// the mean base price actually used.
type Result struct {
	Prices       model.Series
	Mode         Mode
	Distribution Distribution // ModeRandom only
	// Adjusted is true when any custom value was clamped or any
	// period's effective fluctuation range was reduced below the
	// requested one. AdjustedPeriods counts the affected periods.
	Adjusted        bool
	AdjustedPeriods int
	// MeanBase is the mean of the per-period base prices after length
	// reconciliation and clamping (ModeRandom), or of the delivered
	// vector otherwise.
	MeanBase float64
}

// Provider produces clearing-price vectors. It holds only immutable
// configuration, so one Provider is safe for concurrent use; any
// randomness is scoped to a single Generate call.
type Provider struct {
	bounds  model.PriceBounds
	pattern model.Series
}

// NewProvider builds a Provider with the given bounds and default
// pattern. Zero-value arguments fall back to the package defaults.
func NewProvider(bounds model.PriceBounds, pattern model.Series) (*Provider, error) {
	if bounds == (model.PriceBounds{}) {
		bounds = model.DefaultPriceBounds()
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		pattern = DefaultPattern
	}
	return &Provider{bounds: bounds, pattern: pattern.Clone()}, nil
}

func (p *Provider) Bounds() model.PriceBounds { return p.bounds }

func (p *Provider) Pattern() model.Series { return p.pattern.Clone() }

// Generate resolves a price source into a vector of exactly n entries.
func (p *Provider) Generate(n int, src Source) (*Result, error) {
	if n <= 0 {
		return nil, ErrInvalidPeriodCount
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	switch src.Mode {
	case ModeDefault:
		prices, err := p.pattern.TileTo(n)
		if err != nil {
			return nil, err
		}
		return &Result{
			Prices:   prices,
			Mode:     ModeDefault,
			MeanBase: prices.Mean(),
		}, nil

	case ModeCustom:
		prices, clamped, err := p.reconcile(src.Custom, n)
		if err != nil {
			return nil, err
		}
		return &Result{
			Prices:          prices,
			Mode:            ModeCustom,
			Adjusted:        clamped > 0,
			AdjustedPeriods: clamped,
			MeanBase:        prices.Mean(),
		}, nil

	case ModeRandom:
		return p.synthesize(n, src.Params)

	case ModeForecast:
		return nil, ErrForecastNotImplemented
	}

	// Unreachable: Validate rejects unknown modes.
	return nil, ErrForecastNotImplemented
}

// reconcile tiles or truncates raw to exactly n entries, then clamps
// every value into the price bounds and reports how many were altered.
func (p *Provider) reconcile(raw model.Series, n int) (model.Series, int, error) {
	prices, err := raw.TileTo(n)
	if err != nil {
		return nil, 0, err
	}
	clamped := 0
	for i, v := range prices {
		c := p.bounds.Clamp(v)
		if c != v {
			prices[i] = c
			clamped++
		}
	}
	return prices, clamped, nil
}
