package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Filter struct {
	ProviderID    *uint
	Query         string
	Category      string
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	AvailableOnly bool
}

type Repository interface {
	// GetProvider returns the user only if it has the provider role.
	GetProvider(ctx context.Context, id uint) (*models.User, error)

	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id uint) (*models.Service, error)
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
	ListServices(ctx context.Context, f Filter) ([]models.Service, error)
}
