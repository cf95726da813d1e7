package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

// UpdateServiceInput holds the fields to change; nil means unchanged.
type UpdateServiceInput struct {
	Title        *string  `validate:"omitempty,min=1,max=150"`
	Description  *string  `validate:"omitempty,min=1"`
	Category     *string
	PricePerHour *float64 `validate:"omitempty,gt=0"`
	Price        *float64 `validate:"omitempty,gte=0"`
	Duration     *int     `validate:"omitempty,gt=0,lte=1440"`
	Available    *bool
}

type UpdateService struct {
	repo catalogdomain.Repository
}

func NewUpdateService(repo catalogdomain.Repository) *UpdateService {
	return &UpdateService{repo: repo}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	actor domain.Actor,
	serviceID uint,
	in UpdateServiceInput,
) (*models.Service, error) {

	s, err := loadOwned(ctx, uc.repo, actor, serviceID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		in.Title = &t
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
	}

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Category != nil {
		s.Category = catalogdomain.NormalizeCategory(*in.Category)
	}
	if in.PricePerHour != nil {
		s.PricePerHour = *in.PricePerHour
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.Duration != nil {
		s.Duration = *in.Duration
	}
	if in.Available != nil {
		s.Available = *in.Available
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, httperr.Internal("failed_to_update_service", err)
	}

	return loadService(ctx, uc.repo, s.ID)
}
