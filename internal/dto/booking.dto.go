package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// BookingDTO is a booking with its parties resolved to names.
type BookingDTO struct {
	ID uint `json:"id"`

	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	ProviderID    *uint  `json:"provider_id"`
	ProviderName  string `json:"provider_name,omitempty"`
	ProviderEmail string `json:"provider_email,omitempty"`

	ServiceID    *uint   `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	Category     string  `json:"category"`
	PricePerHour float64 `json:"price_per_hour"`

	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration"`
	TotalPrice  float64   `json:"total_price"`
	Description string    `json:"description"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Rating        *int   `json:"rating,omitempty"`
	Review        string `json:"review,omitempty"`

	CancelledBy        *uint      `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBooking(b *models.Booking) BookingDTO {
	out := BookingDTO{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		CustomerName:       b.Customer.Name,
		CustomerEmail:      b.Customer.Email,
		ProviderID:         b.ProviderID,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		Category:           b.Category,
		PricePerHour:       b.PricePerHour,
		Date:               b.Date,
		Time:               b.Time,
		Duration:           b.Duration,
		TotalPrice:         b.TotalPrice,
		Description:        b.Description,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		Rating:             b.Rating,
		Review:             b.Review,
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CompletedAt:        b.CompletedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.Provider != nil {
		out.ProviderName = b.Provider.Name
		out.ProviderEmail = b.Provider.Email
	}

	return out
}

func FromBookings(list []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, FromBooking(&list[i]))
	}
	return out
}
