package model

import "errors"

// Default clearing-price bounds for the custom and random price modes,
// in currency per kW. The fixed default price pattern is not bounded.
const (
	DefaultPriceFloor   = 0.0
	DefaultPriceCeiling = 3.0
)

// PriceBounds is the closed range a custom or synthesized clearing
// price must lie within. Values outside the range are clamped, not
// rejected; callers are told via the adjusted metadata.
type PriceBounds struct {
	Floor   float64
	Ceiling float64
}

func DefaultPriceBounds() PriceBounds {
	return PriceBounds{Floor: DefaultPriceFloor, Ceiling: DefaultPriceCeiling}
}

func (b PriceBounds) Validate() error {
	if b.Floor < 0 {
		return errors.New("price floor must be >= 0")
	}
	if b.Ceiling <= b.Floor {
		return errors.New("price ceiling must be greater than the floor")
	}
	return nil
}

// Clamp forces v into [Floor, Ceiling].
func (b PriceBounds) Clamp(v float64) float64 {
	if v < b.Floor {
		return b.Floor
	}
	if v > b.Ceiling {
		return b.Ceiling
	}
	return v
}

// Contains reports whether v lies within the closed range.
func (b PriceBounds) Contains(v float64) bool {
	return v >= b.Floor && v <= b.Ceiling
}
