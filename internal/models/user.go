package models

import "time"

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;index;default:'customer'" json:"role"`

	Blocked     bool   `gorm:"default:false" json:"blocked"`
	BlockReason string `gorm:"size:255" json:"block_reason,omitempty"`
	Verified    bool   `gorm:"default:false" json:"verified"`

	// Cached projections of the booking ledger; read views recompute them.
	TotalEarnings float64 `gorm:"default:0" json:"total_earnings"`
	TotalBookings int     `gorm:"default:0" json:"total_bookings"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}
