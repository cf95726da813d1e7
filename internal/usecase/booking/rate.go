package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/events"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

const maxReviewLength = 2000

type RateBooking struct {
	repo   bookingdomain.Repository
	events events.Publisher
}

func NewRateBooking(repo bookingdomain.Repository, pub events.Publisher) *RateBooking {
	return &RateBooking{repo: repo, events: pub}
}

// Execute stores rating and review. Provider aggregates are not updated
// here; read views compute them from the ledger.
func (uc *RateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	rating int,
	review string,
) (*models.Booking, error) {

	b, err := loadBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return nil, err
	}

	if b.CustomerID != actor.ID {
		return nil, httperr.Forbidden("not_booking_owner", "Only the customer who booked can rate.")
	}

	if err := bookingdomain.CanRate(bookingdomain.Status(b.Status)); err != nil {
		return nil, err
	}

	review = strings.TrimSpace(review)
	if len(review) > maxReviewLength {
		return nil, httperr.Validation("review_too_long", "Review is too long.")
	}

	r := bookingdomain.ClampRating(rating)

	if err := uc.repo.SetRating(ctx, b.ID, r, review, bookingdomain.RateableStatuses); err != nil {
		return nil, mapRepoErr(err, "failed_to_rate_booking")
	}

	b.Rating = &r
	b.Review = review

	events.Emit(ctx, uc.events, events.BookingRated, events.BookingEvent{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		Status:     b.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Rating:     b.Rating,
		OccurredAt: time.Now(),
	})

	return b, nil
}
