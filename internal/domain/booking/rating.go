package booking

import (
	"slices"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5
)

// RateableStatuses are the states in which the customer may rate.
var RateableStatuses = []Status{StatusAccepted, StatusCompleted}

// CanRate allows a rating once the provider has accepted the booking.
func CanRate(current Status) error {
	if !slices.Contains(RateableStatuses, current) {
		return httperr.ErrBusiness("rating_not_allowed", "Only accepted or completed bookings can be rated.")
	}
	return nil
}

func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
