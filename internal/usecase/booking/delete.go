package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type DeleteBooking struct {
	repo  bookingdomain.Repository
	audit audit.Recorder
}

func NewDeleteBooking(repo bookingdomain.Repository, rec audit.Recorder) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: rec}
}

// Execute hard-deletes the booking. Only its customer or an admin may.
func (uc *DeleteBooking) Execute(ctx context.Context, actor domain.Actor, bookingID uint) error {
	b, err := loadBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return err
	}

	isAdmin := actor.Role == models.RoleAdmin
	if b.CustomerID != actor.ID && !isAdmin {
		return httperr.Forbidden("not_booking_owner", "Not authorized to delete this booking.")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return mapRepoErr(err, "failed_to_delete_booking")
	}

	if isAdmin {
		uc.audit.Dispatch(audit.Event{
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			Action:       "admin_delete_booking",
			ResourceType: "booking",
			ResourceID:   &b.ID,
			Details: map[string]any{
				"service_name": b.ServiceName,
				"customer_id":  b.CustomerID,
			},
		})
	}

	return nil
}
