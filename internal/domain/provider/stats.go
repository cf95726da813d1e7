package provider

import (
	"context"
	"math"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Stats is computed from the booking ledger on every read.
type Stats struct {
	TotalServices     int64   `json:"total_services"`
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	RespondedBookings int64   `json:"-"`
	TotalEarnings     float64 `json:"total_earnings"`
	AverageRating     float64 `json:"average_rating"`
	ResponseRate      int     `json:"response_rate"`
}

// Finish derives the ratio fields.
func (s *Stats) Finish() {
	if s.TotalBookings > 0 {
		s.ResponseRate = int(math.Round(float64(s.RespondedBookings) / float64(s.TotalBookings) * 100))
	}
	s.AverageRating = math.Round(s.AverageRating*10) / 10
	s.TotalEarnings = math.Round(s.TotalEarnings*100) / 100
}

type Analytics struct {
	ByStatus      map[string]int64 `json:"by_status"`
	TotalBookings int64            `json:"total_bookings"`
	Earnings      float64          `json:"earnings"`
	AverageRating float64          `json:"average_rating"`
	RatedBookings int64            `json:"rated_bookings"`
}

type Repository interface {
	GetProvider(ctx context.Context, id uint) (*models.User, error)
	ListProviders(ctx context.Context) ([]models.User, error)
	ListServicesByProvider(ctx context.Context, providerID uint) ([]models.Service, error)
	StatsFor(ctx context.Context, providerIDs []uint) (map[uint]Stats, error)
	RecentReviews(ctx context.Context, providerID uint, limit int) ([]models.Booking, error)
	Analytics(ctx context.Context, providerID uint) (*Analytics, error)
}

// Summary is a provider together with the stats computed for it.
type Summary struct {
	Provider models.User
	Stats    Stats
}

// Profile is the public page of a provider.
type Profile struct {
	Summary
	Services []models.Service
	Reviews  []models.Booking
}
