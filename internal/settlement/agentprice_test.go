package settlement

import (
	"testing"

	"dr-settlement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPrice_FloorAndShare(t *testing.T) {
	// Above the floor the user gets floor + 0.8 of the upside; at or
	// below it the floor is guaranteed.
	user, err := UserPrice(50, model.Series{90, 40, 50}, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 82, user[0], 1e-9)
	assert.InDelta(t, 50, user[1], 1e-9)
	assert.InDelta(t, 50, user[2], 1e-9)
}

func TestUserPrice_FullShare(t *testing.T) {
	// share=1 passes the clearing price through above the floor.
	user, err := UserPrice(50, model.Series{90}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 90, user[0], 1e-9)
}

func TestUserPrice_NegativeFloorRejected(t *testing.T) {
	_, err := UserPrice(-1, model.Series{90}, 0.5)
	require.Error(t, err)
}

func TestUserPrice_NegativeShareRejected(t *testing.T) {
	_, err := UserPrice(50, model.Series{90}, -0.5)
	require.Error(t, err)
}
