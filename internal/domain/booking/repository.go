package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ListFilter struct {
	CustomerID *uint
	ProviderID *uint
	Status     string
}

type Repository interface {
	// -------- Service --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, error)

	// Writes touch only their own columns and only while the stored row
	// still matches what the caller read; otherwise domain.ErrConflict.
	ChangeStatus(ctx context.Context, b *models.Booking, from Status) error
	SetRating(ctx context.Context, id uint, rating int, review string, when []Status) error
	SetPaymentStatus(ctx context.Context, id uint, from, to PaymentStatus) error

	// -------- Notifications --------
	ListPendingForProvider(ctx context.Context, providerID uint, since time.Time, limit int) ([]models.Booking, error)
	ListUpdatedForCustomer(ctx context.Context, customerID uint, since time.Time, statuses []string, limit int) ([]models.Booking, error)
}
