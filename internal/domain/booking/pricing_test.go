package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

func TestTotalPrice(t *testing.T) {
	cases := []struct {
		rate     float64
		minutes  int
		expected float64
	}{
		{50, 90, 75},
		{50, 60, 50},
		{40, 45, 30},
		{33.33, 20, 11.11},
		{10, 0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, TotalPrice(tc.rate, tc.minutes), "%v/h for %d min", tc.rate, tc.minutes)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, 2.5, Round2(2.499999))
}

func TestCanRate(t *testing.T) {
	assert.NoError(t, CanRate(StatusAccepted))
	assert.NoError(t, CanRate(StatusCompleted))

	for _, s := range []Status{StatusPending, StatusRejected, StatusCancelled} {
		err := CanRate(s)
		require.Error(t, err)
		assert.Equal(t, httperr.KindBusiness, httperr.KindOf(err))
	}
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(-3))
	assert.Equal(t, 1, ClampRating(0))
	assert.Equal(t, 4, ClampRating(4))
	assert.Equal(t, 5, ClampRating(9))
}
