package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type UpdatePaymentStatus struct {
	repo  bookingdomain.Repository
	audit audit.Recorder
}

func NewUpdatePaymentStatus(repo bookingdomain.Repository, rec audit.Recorder) *UpdatePaymentStatus {
	return &UpdatePaymentStatus{repo: repo, audit: rec}
}

func (uc *UpdatePaymentStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	if actor.Role != models.RoleAdmin {
		return nil, httperr.Forbidden("admin_only", "Admin access required.")
	}

	ps, err := bookingdomain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := loadBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return nil, err
	}

	previous := b.PaymentStatus

	err = uc.repo.SetPaymentStatus(ctx, b.ID, bookingdomain.PaymentStatus(previous), ps)
	if err != nil {
		return nil, mapRepoErr(err, "failed_to_update_payment")
	}
	b.PaymentStatus = string(ps)

	uc.audit.Dispatch(audit.Event{
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		Action:       "admin_payment_status",
		ResourceType: "booking",
		ResourceID:   &b.ID,
		Details: map[string]any{
			"from": previous,
			"to":   b.PaymentStatus,
		},
	})

	return b, nil
}
