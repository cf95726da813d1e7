package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// feedRepo only implements the notification queries.
type feedRepo struct {
	bookingdomain.Repository

	pending  []models.Booking
	updated  []models.Booking
	since    time.Time
	statuses []string
	limit    int
}

func (r *feedRepo) ListPendingForProvider(_ context.Context, _ uint, since time.Time, limit int) ([]models.Booking, error) {
	r.since, r.limit = since, limit
	return r.pending, nil
}

func (r *feedRepo) ListUpdatedForCustomer(_ context.Context, _ uint, since time.Time, statuses []string, limit int) ([]models.Booking, error) {
	r.since, r.statuses, r.limit = since, statuses, limit
	return r.updated, nil
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(repo *feedRepo) *ListNotifications {
	uc := NewListNotifications(repo)
	uc.now = func() time.Time { return now }
	return uc
}

func TestProviderFeed(t *testing.T) {
	repo := &feedRepo{pending: []models.Booking{{
		ID:          7,
		Customer:    models.User{Name: "Ana"},
		ServiceName: "Deep clean",
		Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:        "14:00",
		CreatedAt:   now.Add(-time.Hour),
	}}}

	list, err := newUseCase(repo).Execute(context.Background(), domain.Actor{ID: 10, Role: models.RoleProvider}, time.Time{})
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "booking-7-new", list[0].ID)
	assert.Equal(t, "Ana requested Deep clean on 2026-03-12 at 14:00", list[0].Message)
	assert.Equal(t, now.Add(-7*24*time.Hour), repo.since)
	assert.Equal(t, MaxItems, repo.limit)
}

func TestCustomerFeed(t *testing.T) {
	repo := &feedRepo{updated: []models.Booking{{
		ID:          8,
		ServiceName: "Deep clean",
		Status:      "accepted",
		UpdatedAt:   now,
	}}}
	since := now.Add(-time.Hour)

	list, err := newUseCase(repo).Execute(context.Background(), domain.Actor{ID: 20, Role: models.RoleCustomer}, since)
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "booking-8-accepted", list[0].ID)
	assert.Equal(t, "Your booking for Deep clean is now accepted", list[0].Message)
	assert.Equal(t, since, repo.since)
	assert.ElementsMatch(t, []string{"accepted", "rejected", "completed", "cancelled"}, repo.statuses)
	assert.NotContains(t, repo.statuses, "pending")
}

func TestEmptyFeed(t *testing.T) {
	list, err := newUseCase(&feedRepo{}).Execute(context.Background(), domain.Actor{ID: 20, Role: models.RoleCustomer}, time.Time{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
