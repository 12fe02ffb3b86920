package settlement

import (
	"errors"

	"dr-settlement/internal/model"
)

// UserPrice derives the per-period price an agent passes through to the
// end user under the floor_share mode: the user is guaranteed the floor
// whenever the clearing price is at or below it, and receives
// floor + (clearing - floor)*share of any upside above it. The agent
// keeps the remainder of the upside.
func UserPrice(floor float64, clearing model.Series, share float64) (model.Series, error) {
	if floor < 0 {
		return nil, errors.New("floor price must be >= 0")
	}
	if share < 0 {
		return nil, errors.New("share ratio must be >= 0")
	}
	user := make(model.Series, len(clearing))
	for i, p := range clearing {
		if p <= floor {
			user[i] = floor
		} else {
			user[i] = floor + (p-floor)*share
		}
	}
	return user, nil
}
