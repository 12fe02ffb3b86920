package pricing

import (
	"errors"
	"fmt"

	"dr-settlement/internal/model"
)

// Mode identifies where a clearing-price vector comes from.
type Mode string

const (
	// ModeDefault uses the fixed reference pattern, tiled to length.
	ModeDefault Mode = "default"
	// ModeCustom uses a caller-supplied vector, tiled/truncated and
	// clamped to the price bounds.
	ModeCustom Mode = "custom"
	// ModeRandom synthesizes prices from GenerationParams.
	ModeRandom Mode = "random"
	// ModeForecast is reserved for model-based price forecasting.
	ModeForecast Mode = "forecast"
)

// ErrForecastNotImplemented is returned for ModeForecast.
var ErrForecastNotImplemented = errors.New("forecast price source is not implemented")

// ErrInvalidPeriodCount is returned when the requested period count is
// not a positive integer.
var ErrInvalidPeriodCount = errors.New("period count must be a positive integer")

// Distribution selects the random synthesis strategy.
type Distribution string

const (
	// DistUniform draws each period independently and uniformly within
	// base*(1 +/- effective range).
	DistUniform Distribution = "uniform"
	// DistNormal draws each period from a normal centered on base with
	// sigma sized so +/-3 sigma spans the effective range.
	DistNormal Distribution = "normal"
	// DistCorrelatedWalk carries a fraction of the prior period's
	// fractional deviation forward, modeling serially correlated prices.
	DistCorrelatedWalk Distribution = "correlated_walk"
)

// GenerationParams configures one random price synthesis call. It is
// consumed by a single Generate invocation and does not outlive it.
//
// Base holds the base price per period; a single entry is broadcast to
// every period. Fluctuation is the requested fractional range in [0,1].
// Correlation in [0,1] applies only to DistCorrelatedWalk. A non-nil
// Seed makes the call reproducible; each call builds its own RNG so
// concurrent generations never interfere.
type GenerationParams struct {
	Base         model.Series
	Fluctuation  float64
	Distribution Distribution
	Correlation  float64
	Seed         *int64
}

func (p *GenerationParams) Validate() error {
	if p == nil {
		return errors.New("random price source requires generation params")
	}
	if len(p.Base) == 0 {
		return errors.New("random price source requires a base price")
	}
	if p.Fluctuation < 0 || p.Fluctuation > 1 {
		return errors.New("fluctuation must be in [0, 1]")
	}
	switch p.Distribution {
	case DistUniform, DistNormal:
	case DistCorrelatedWalk:
		if p.Correlation < 0 || p.Correlation > 1 {
			return errors.New("correlation must be in [0, 1]")
		}
	default:
		return fmt.Errorf("unsupported distribution %q", p.Distribution)
	}
	return nil
}

// Source is the tagged union resolved once at the API boundary: a
// clearing price comes from exactly one of the default pattern, a
// custom vector, or random synthesis.
type Source struct {
	Mode   Mode
	Custom model.Series      // ModeCustom only
	Params *GenerationParams // ModeRandom only
}

// DefaultSource selects the fixed reference pattern.
func DefaultSource() Source { return Source{Mode: ModeDefault} }

// CustomSource selects a caller-supplied price vector.
func CustomSource(prices model.Series) Source {
	return Source{Mode: ModeCustom, Custom: prices}
}

// RandomSource selects bounded random synthesis.
func RandomSource(params GenerationParams) Source {
	return Source{Mode: ModeRandom, Params: &params}
}

func (s Source) Validate() error {
	switch s.Mode {
	case ModeDefault:
		return nil
	case ModeCustom:
		if len(s.Custom) == 0 {
			return errors.New("custom price source requires a non-empty price vector")
		}
		return nil
	case ModeRandom:
		return s.Params.Validate()
	case ModeForecast:
		return nil
	default:
		return fmt.Errorf("unsupported price source mode %q", s.Mode)
	}
}
