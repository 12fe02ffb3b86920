package pricing

import (
	"math"
	"math/rand"
	"time"

	"dr-settlement/internal/model"
)

// normalMaxAttempts bounds the rejection sampling of DistNormal so a
// Generate call always terminates; the final draw is clamped if every
// attempt landed out of range.
const normalMaxAttempts = 100

// synthesize produces n random prices from params. The RNG is built
// fresh per call (from params.Seed when supplied), so concurrent
// generations are reproducible and never interfere.
func (p *Provider) synthesize(n int, params *GenerationParams) (*Result, error) {
	base, clampedBase, err := p.reconcile(params.Base, n)
	if err != nil {
		return nil, err
	}

	ranges, reduced := p.effectiveRanges(base, params.Fluctuation)

	rng := newRNG(params.Seed)

	var prices model.Series
	switch params.Distribution {
	case DistUniform:
		prices = p.drawUniform(rng, base, ranges)
	case DistNormal:
		prices = p.drawNormal(rng, base, ranges)
	case DistCorrelatedWalk:
		prices = p.drawCorrelatedWalk(rng, base, ranges, params.Correlation)
	}

	adjusted := reduced + clampedBase
	return &Result{
		Prices:          prices,
		Mode:            ModeRandom,
		Distribution:    params.Distribution,
		Adjusted:        adjusted > 0,
		AdjustedPeriods: adjusted,
		MeanBase:        base.Mean(),
	}, nil
}

// effectiveRanges caps the requested fluctuation per period at the
// headroom ratios to the floor and the ceiling, so every draw of
// base*(1 +/- range) already lies inside the bounds. It returns the
// per-period ranges and how many periods were reduced below the
// requested fluctuation.
func (p *Provider) effectiveRanges(base model.Series, fluctuation float64) (model.Series, int) {
	ranges := make(model.Series, len(base))
	reduced := 0
	for i, b := range base {
		r := fluctuation
		if b <= 0 {
			// No room to fluctuate below a zero base.
			r = 0
		} else {
			if head := (b - p.bounds.Floor) / b; head < r {
				r = head
			}
			if head := (p.bounds.Ceiling - b) / b; head < r {
				r = head
			}
			if r < 0 {
				r = 0
			}
		}
		if r < fluctuation {
			reduced++
		}
		ranges[i] = r
	}
	return ranges, reduced
}

func (p *Provider) drawUniform(rng *rand.Rand, base, ranges model.Series) model.Series {
	out := make(model.Series, len(base))
	for i, b := range base {
		dev := (rng.Float64()*2 - 1) * ranges[i]
		out[i] = p.bounds.Clamp(round3(b * (1 + dev)))
	}
	return out
}

func (p *Provider) drawNormal(rng *rand.Rand, base, ranges model.Series) model.Series {
	out := make(model.Series, len(base))
	for i, b := range base {
		// +/-3 sigma spans the effective range.
		sigma := b * ranges[i] / 3
		draw := b
		for attempt := 0; attempt < normalMaxAttempts; attempt++ {
			draw = b + rng.NormFloat64()*sigma
			if p.bounds.Contains(draw) {
				break
			}
		}
		out[i] = p.bounds.Clamp(round3(draw))
	}
	return out
}

// drawCorrelatedWalk is intrinsically sequential: period t inherits a
// fraction of period t-1's realized fractional deviation from its own
// base, plus an independent innovation scaled by (1 - correlation).
func (p *Provider) drawCorrelatedWalk(rng *rand.Rand, base, ranges model.Series, correlation float64) model.Series {
	out := make(model.Series, len(base))
	prevDev := 0.0
	for i, b := range base {
		var dev float64
		if i == 0 {
			dev = (rng.Float64()*2 - 1) * ranges[i]
		} else {
			innovation := (rng.Float64()*2 - 1) * ranges[i]
			dev = correlation*prevDev + (1-correlation)*innovation
		}
		price := p.bounds.Clamp(round3(b * (1 + dev)))
		out[i] = price
		if b > 0 {
			prevDev = (price - b) / b
		} else {
			prevDev = 0
		}
	}
	return out
}

func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
