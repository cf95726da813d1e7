package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

const defaultDuration = 60

type CreateServiceInput struct {
	// Required when an admin creates a service on a provider's behalf;
	// ignored for providers, who always own what they create.
	ProviderID *uint

	Title        string   `validate:"required,max=150"`
	Description  string   `validate:"required"`
	Category     string   `validate:"max=50"`
	PricePerHour *float64 `validate:"required,gt=0"`
	Price        *float64 `validate:"omitempty,gte=0"`
	Duration     int      `validate:"gte=0,lte=1440"`
}

type CreateService struct {
	repo catalogdomain.Repository
}

func NewCreateService(repo catalogdomain.Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateServiceInput,
) (*models.Service, error) {

	if actor.Role != models.RoleProvider && actor.Role != models.RoleAdmin {
		return nil, httperr.Forbidden("providers_only", "Only providers can create services.")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	ownerID, err := uc.owner(ctx, actor, in.ProviderID)
	if err != nil {
		return nil, err
	}

	s := &models.Service{
		ProviderID:   ownerID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     catalogdomain.NormalizeCategory(in.Category),
		PricePerHour: *in.PricePerHour,
		Price:        *in.PricePerHour,
		Duration:     in.Duration,
		Available:    true,
	}

	if in.Price != nil {
		s.Price = *in.Price
	}
	if s.Duration == 0 {
		s.Duration = defaultDuration
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, httperr.Internal("failed_to_create_service", err)
	}

	return loadService(ctx, uc.repo, s.ID)
}

// owner resolves who the new service belongs to. Admins must name an
// existing provider.
func (uc *CreateService) owner(ctx context.Context, actor domain.Actor, providerID *uint) (uint, error) {
	if actor.Role == models.RoleProvider {
		return actor.ID, nil
	}

	if providerID == nil || *providerID == 0 {
		return 0, httperr.Validation("provider_id_required", "provider_id is required when an admin creates a service.")
	}

	p, err := uc.repo.GetProvider(ctx, *providerID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, httperr.NotFound("provider_not_found", "Provider not found.")
	}
	if err != nil {
		return 0, httperr.Internal("failed_to_get_provider", err)
	}
	return p.ID, nil
}
