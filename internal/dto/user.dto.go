package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// UserDTO is a user without credentials.
type UserDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Blocked     bool      `json:"blocked"`
	BlockReason string    `json:"block_reason,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		Blocked:     u.Blocked,
		BlockReason: u.BlockReason,
		Verified:    u.Verified,
		CreatedAt:   u.CreatedAt,
	}
}

func FromUsers(list []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, FromUser(&list[i]))
	}
	return out
}
