package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"index;not null" json:"provider_id"`
	Provider   User `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	Title        string  `gorm:"size:150;not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Category     string  `gorm:"size:50;index;default:'Other'" json:"category"`
	PricePerHour float64 `gorm:"not null" json:"price_per_hour"`
	Price        float64 `gorm:"not null" json:"price"`
	Duration     int     `gorm:"default:60" json:"duration"`
	Available    bool    `gorm:"default:true" json:"available"`
	Rating       float64 `gorm:"default:0" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
