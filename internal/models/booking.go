package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	// Nil for ad hoc bookings.
	ProviderID *uint    `gorm:"index" json:"provider_id"`
	Provider   *User    `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider,omitempty"`
	ServiceID  *uint    `gorm:"index" json:"service_id"`
	Service    *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// Captured at booking time.
	ServiceName  string  `gorm:"size:150;not null" json:"service_name"`
	Category     string  `gorm:"size:50;default:'Other'" json:"category"`
	PricePerHour float64 `json:"price_per_hour"`

	Date        time.Time `gorm:"index;not null" json:"date"`
	Time        string    `gorm:"size:5;not null" json:"time"`
	Duration    int       `gorm:"default:60" json:"duration"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
	Description string    `gorm:"type:text" json:"description"`

	Status        string `gorm:"size:20;index;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	Rating *int   `json:"rating,omitempty"`
	Review string `gorm:"type:text" json:"review,omitempty"`

	CancelledBy        *uint      `json:"cancelled_by,omitempty"`
	CancellationReason string     `gorm:"size:255" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
