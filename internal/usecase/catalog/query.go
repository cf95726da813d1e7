package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ======================================================
// PUBLIC READS
// ======================================================

type GetService struct {
	repo catalogdomain.Repository
}

func NewGetService(repo catalogdomain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, serviceID uint) (*models.Service, error) {
	return loadService(ctx, uc.repo, serviceID)
}

type ListServices struct {
	repo catalogdomain.Repository
}

func NewListServices(repo catalogdomain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, f catalogdomain.Filter) ([]models.Service, error) {
	if f.Category != "" {
		known, ok := catalogdomain.LookupCategory(f.Category)
		if !ok {
			return []models.Service{}, nil
		}
		f.Category = known
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, httperr.Validation("invalid_price_range", "min_price cannot exceed max_price.")
	}

	list, err := uc.repo.ListServices(ctx, f)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_services", err)
	}
	return list, nil
}

// ======================================================
// HELPERS
// ======================================================

func loadService(ctx context.Context, repo catalogdomain.Repository, id uint) (*models.Service, error) {
	s, err := repo.GetService(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "failed_to_get_service")
	}
	return s, nil
}

// loadOwned returns the service if actor is its provider or an admin.
func loadOwned(
	ctx context.Context,
	repo catalogdomain.Repository,
	actor domain.Actor,
	id uint,
) (*models.Service, error) {

	s, err := loadService(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleAdmin {
		return s, nil
	}
	if actor.Role == models.RoleProvider && s.ProviderID == actor.ID {
		return s, nil
	}

	return nil, httperr.Forbidden("not_service_owner", "Not authorized to modify this service.")
}

func mapRepoErr(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("service_not_found", "Service not found.")
	}
	return httperr.Internal(code, err)
}
