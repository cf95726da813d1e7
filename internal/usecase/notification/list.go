package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

const (
	MaxItems      = 10
	defaultWindow = 7 * 24 * time.Hour
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Link      string    `json:"link"`
}

var updateStatuses = []string{
	string(bookingdomain.StatusAccepted),
	string(bookingdomain.StatusRejected),
	string(bookingdomain.StatusCompleted),
	string(bookingdomain.StatusCancelled),
}

type ListNotifications struct {
	repo bookingdomain.Repository
	now  func() time.Time
}

func NewListNotifications(repo bookingdomain.Repository) *ListNotifications {
	return &ListNotifications{repo: repo, now: time.Now}
}

// Execute builds the feed from the booking ledger. A zero since means the
// last seven days.
func (uc *ListNotifications) Execute(
	ctx context.Context,
	actor domain.Actor,
	since time.Time,
) ([]Notification, error) {

	if since.IsZero() {
		since = uc.now().Add(-defaultWindow)
	}

	if actor.Role == models.RoleProvider {
		list, err := uc.repo.ListPendingForProvider(ctx, actor.ID, since, MaxItems)
		if err != nil {
			return nil, httperr.Internal("failed_to_load_notifications", err)
		}

		out := make([]Notification, 0, len(list))
		for _, b := range list {
			out = append(out, Notification{
				ID:        fmt.Sprintf("booking-%d-new", b.ID),
				Title:     "New booking request",
				Message:   fmt.Sprintf("%s requested %s on %s at %s", b.Customer.Name, b.ServiceName, b.Date.Format("2006-01-02"), b.Time),
				CreatedAt: b.CreatedAt,
				Link:      "/provider/bookings",
			})
		}
		return out, nil
	}

	list, err := uc.repo.ListUpdatedForCustomer(ctx, actor.ID, since, updateStatuses, MaxItems)
	if err != nil {
		return nil, httperr.Internal("failed_to_load_notifications", err)
	}

	out := make([]Notification, 0, len(list))
	for _, b := range list {
		out = append(out, Notification{
			ID:        fmt.Sprintf("booking-%d-%s", b.ID, b.Status),
			Title:     "Booking " + b.Status,
			Message:   fmt.Sprintf("Your booking for %s is now %s", b.ServiceName, b.Status),
			CreatedAt: b.UpdatedAt,
			Link:      "/bookings",
		})
	}
	return out, nil
}
