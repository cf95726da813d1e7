package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/events"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
)

type UpdateBookingStatus struct {
	repo     bookingdomain.Repository
	audit    audit.Recorder
	events   events.Publisher
	timezone string
}

func NewUpdateBookingStatus(
	repo bookingdomain.Repository,
	rec audit.Recorder,
	pub events.Publisher,
	tz string,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:     repo,
		audit:    rec,
		events:   pub,
		timezone: tz,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	status string,
	reason string,
) (*models.Booking, error) {

	target, err := bookingdomain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := loadBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.assertCanAct(ctx, actor, b); err != nil {
		return nil, err
	}

	previous := b.Status
	now := timezone.NowIn(uc.timezone)

	if err := bookingdomain.Transition(b, actor.Role, actor.ID, target, strings.TrimSpace(reason), now); err != nil {
		return nil, err
	}

	if err := uc.repo.ChangeStatus(ctx, b, bookingdomain.Status(previous)); err != nil {
		return nil, mapRepoErr(err, "failed_to_update_booking")
	}

	if actor.Role == models.RoleAdmin {
		uc.audit.Dispatch(audit.Event{
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			Action:       "admin_booking_status",
			ResourceType: "booking",
			ResourceID:   &b.ID,
			Details: map[string]any{
				"from": previous,
				"to":   b.Status,
			},
		})
	}

	events.Emit(ctx, uc.events, events.BookingStatusChanged, events.BookingEvent{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		Status:     b.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		OccurredAt: time.Now(),
	})

	return loadBooking(ctx, uc.repo, b.ID)
}

// assertCanAct checks ownership; the transition table is checked after.
func (uc *UpdateBookingStatus) assertCanAct(
	ctx context.Context,
	actor domain.Actor,
	b *models.Booking,
) error {

	switch actor.Role {
	case models.RoleAdmin:
		return nil

	case models.RoleCustomer:
		if b.CustomerID == actor.ID {
			return nil
		}

	case models.RoleProvider:
		if b.ServiceID == nil {
			break
		}
		svc, err := uc.repo.GetService(ctx, *b.ServiceID)
		if errors.Is(err, domain.ErrNotFound) {
			break
		}
		if err != nil {
			return httperr.Internal("failed_to_get_service", err)
		}
		if svc.ProviderID == actor.ID {
			return nil
		}
	}

	return httperr.Forbidden("not_booking_party", "Not authorized to update this booking.")
}
