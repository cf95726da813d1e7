package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/provider"
)

// ProviderDTO flattens the user and its ledger stats.
type ProviderDTO struct {
	UserDTO
	provider.Stats
}

type ReviewDTO struct {
	BookingID    uint      `json:"booking_id"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	Rating       int       `json:"rating"`
	Review       string    `json:"review"`
	Date         time.Time `json:"date"`
}

type ProviderProfileDTO struct {
	Provider ProviderDTO  `json:"provider"`
	Services []ServiceDTO `json:"services"`
	Reviews  []ReviewDTO  `json:"reviews"`
}

func FromSummary(s *provider.Summary) ProviderDTO {
	return ProviderDTO{
		UserDTO: FromUser(&s.Provider),
		Stats:   s.Stats,
	}
}

func FromSummaries(list []provider.Summary) []ProviderDTO {
	out := make([]ProviderDTO, 0, len(list))
	for i := range list {
		out = append(out, FromSummary(&list[i]))
	}
	return out
}

func FromProfile(p *provider.Profile) ProviderProfileDTO {
	reviews := make([]ReviewDTO, 0, len(p.Reviews))
	for _, b := range p.Reviews {
		r := ReviewDTO{
			BookingID:    b.ID,
			CustomerName: b.Customer.Name,
			ServiceName:  b.ServiceName,
			Review:       b.Review,
			Date:         b.UpdatedAt,
		}
		if b.Rating != nil {
			r.Rating = *b.Rating
		}
		reviews = append(reviews, r)
	}

	// listed services belong to this provider
	services := FromServices(p.Services)
	for i := range services {
		services[i].ProviderName = p.Provider.Name
	}

	return ProviderProfileDTO{
		Provider: FromSummary(&p.Summary),
		Services: services,
		Reviews:  reviews,
	}
}
