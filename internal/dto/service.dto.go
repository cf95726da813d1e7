package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ServiceDTO struct {
	ID            uint      `json:"id"`
	ProviderID    uint      `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PricePerHour  float64   `json:"price_per_hour"`
	Price         float64   `json:"price"`
	Duration      int       `json:"duration"`
	Available     bool      `json:"available"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromService(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		ProviderName:  s.Provider.Name,
		ProviderEmail: s.Provider.Email,
		Title:         s.Title,
		Description:   s.Description,
		Category:      s.Category,
		PricePerHour:  s.PricePerHour,
		Price:         s.Price,
		Duration:      s.Duration,
		Available:     s.Available,
		Rating:        s.Rating,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for i := range list {
		out = append(out, FromService(&list[i]))
	}
	return out
}
