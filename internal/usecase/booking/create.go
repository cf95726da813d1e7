package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/events"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID *uint

	// Ad hoc bookings only; taken from the service otherwise.
	ServiceName string
	Category    string
	TotalPrice  *float64 `validate:"omitempty,gte=0"`

	Date        string `validate:"required"`
	Time        string `validate:"required"`
	Duration    int    `validate:"gte=0,lte=1440"`
	Description string `validate:"max=2000"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     bookingdomain.Repository
	events   events.Publisher
	timezone string
}

func NewCreateBooking(
	repo bookingdomain.Repository,
	pub events.Publisher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		events:   pub,
		timezone: tz,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateBookingInput,
) (*models.Booking, error) {

	if actor.Role != models.RoleCustomer && actor.Role != models.RoleAdmin {
		return nil, httperr.Forbidden("customers_only", "Only customers can create bookings.")
	}

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in the platform timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(in.Date, in.Time, uc.timezone)
	if err != nil {
		return nil, httperr.Validation("invalid_date_or_time", "Invalid date or time.")
	}

	if start.Before(timezone.NowIn(uc.timezone)) {
		return nil, httperr.Validation("booking_in_past", "Cannot book for past dates.")
	}

	b := &models.Booking{
		CustomerID:    actor.ID,
		Date:          start,
		Time:          start.Format(timezone.TimeLayout),
		Duration:      in.Duration,
		Description:   strings.TrimSpace(in.Description),
		Status:        string(bookingdomain.InitialStatus()),
		PaymentStatus: string(bookingdomain.PaymentPending),
	}

	// --------------------------------------------------
	// Service snapshot or ad hoc fields
	// --------------------------------------------------
	if in.ServiceID != nil {
		if err := uc.fromService(ctx, b, *in.ServiceID); err != nil {
			return nil, err
		}
	} else if err := fromAdHoc(b, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, httperr.Internal("failed_to_create_booking", err)
	}

	created, err := uc.repo.GetBooking(ctx, b.ID)
	if err != nil {
		return nil, httperr.Internal("failed_to_load_booking", err)
	}

	events.Emit(ctx, uc.events, events.BookingCreated, events.BookingEvent{
		BookingID:  created.ID,
		CustomerID: created.CustomerID,
		ProviderID: created.ProviderID,
		ServiceID:  created.ServiceID,
		Status:     created.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		OccurredAt: time.Now(),
	})

	return created, nil
}

// fromService copies name, category and rate so later edits of the service
// do not change historical bookings. The price is computed server side.
func (uc *CreateBooking) fromService(ctx context.Context, b *models.Booking, serviceID uint) error {
	svc, err := uc.repo.GetService(ctx, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("service_not_found", "Service not found.")
	}
	if err != nil {
		return httperr.Internal("failed_to_get_service", err)
	}

	if !svc.Available {
		return httperr.ErrBusiness("service_unavailable", "Service is not available.")
	}

	if b.Duration <= 0 {
		b.Duration = svc.Duration
	}
	if b.Duration <= 0 {
		b.Duration = bookingdomain.DefaultDuration
	}

	providerID := svc.ProviderID
	serviceIDCopy := svc.ID

	b.ServiceID = &serviceIDCopy
	b.ProviderID = &providerID
	b.ServiceName = svc.Title
	b.Category = catalog.NormalizeCategory(svc.Category)
	b.PricePerHour = svc.PricePerHour
	b.TotalPrice = bookingdomain.TotalPrice(svc.PricePerHour, b.Duration)

	return nil
}

func fromAdHoc(b *models.Booking, in CreateBookingInput) error {
	name := strings.TrimSpace(in.ServiceName)
	if name == "" || in.TotalPrice == nil {
		return httperr.Validation("missing_fields", "Service name and total price are required.")
	}

	if b.Duration <= 0 {
		b.Duration = bookingdomain.DefaultDuration
	}

	b.ServiceName = name
	b.Category = catalog.NormalizeCategory(in.Category)
	b.TotalPrice = bookingdomain.Round2(*in.TotalPrice)

	return nil
}
