package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorID    *uint  `gorm:"index" json:"actor_id"`
	ActorEmail string `gorm:"size:100" json:"actor_email"`
	Action     string `gorm:"size:50;index;not null" json:"action"`

	ResourceType string `gorm:"size:50" json:"resource_type"`
	ResourceID   *uint  `json:"resource_id"`
	Details      string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}
