package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListBookings struct {
	repo bookingdomain.Repository
}

func NewListBookings(repo bookingdomain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute scopes the list by role: customers see theirs, providers the ones
// addressed to them, admins everything (optionally filtered).
func (uc *ListBookings) Execute(
	ctx context.Context,
	actor domain.Actor,
	providerID *uint,
	status string,
) ([]models.Booking, error) {

	if status != "" {
		if _, err := bookingdomain.ParseStatus(status); err != nil {
			return nil, err
		}
	}

	f := bookingdomain.ListFilter{Status: status}

	switch actor.Role {
	case models.RoleCustomer:
		f.CustomerID = &actor.ID
	case models.RoleProvider:
		f.ProviderID = &actor.ID
	case models.RoleAdmin:
		f.ProviderID = providerID
	default:
		return nil, httperr.Forbidden("forbidden", "Forbidden.")
	}

	list, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_bookings", err)
	}
	return list, nil
}

// ======================================================
// GET
// ======================================================

type GetBooking struct {
	repo bookingdomain.Repository
}

func NewGetBooking(repo bookingdomain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, actor domain.Actor, bookingID uint) (*models.Booking, error) {
	b, err := loadBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return nil, err
	}

	visible := actor.Role == models.RoleAdmin ||
		b.CustomerID == actor.ID ||
		(b.ProviderID != nil && *b.ProviderID == actor.ID)

	if !visible {
		return nil, httperr.Forbidden("not_booking_party", "Not authorized to view this booking.")
	}
	return b, nil
}

// ======================================================
// HELPERS
// ======================================================

func loadBooking(ctx context.Context, repo bookingdomain.Repository, id uint) (*models.Booking, error) {
	b, err := repo.GetBooking(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "failed_to_get_booking")
	}
	return b, nil
}

func mapRepoErr(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("booking_not_found", "Booking not found.")
	}
	if errors.Is(err, domain.ErrConflict) {
		return httperr.Conflict("booking_changed", "Booking was changed by someone else. Reload and try again.")
	}
	return httperr.Internal(code, err)
}
