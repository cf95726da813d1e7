package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	catalogdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type DeleteService struct {
	repo  catalogdomain.Repository
	audit audit.Recorder
}

func NewDeleteService(repo catalogdomain.Repository, rec audit.Recorder) *DeleteService {
	return &DeleteService{repo: repo, audit: rec}
}

// Execute removes the service. Bookings keep their snapshot; the foreign key
// is set to NULL.
func (uc *DeleteService) Execute(ctx context.Context, actor domain.Actor, serviceID uint) error {
	s, err := loadOwned(ctx, uc.repo, actor, serviceID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteService(ctx, s.ID); err != nil {
		return mapRepoErr(err, "failed_to_delete_service")
	}

	if actor.Role == models.RoleAdmin {
		uc.audit.Dispatch(audit.Event{
			ActorID:      &actor.ID,
			ActorEmail:   actor.Email,
			Action:       "admin_delete_service",
			ResourceType: "service",
			ResourceID:   &s.ID,
			Details: map[string]any{
				"title":       s.Title,
				"provider_id": s.ProviderID,
			},
		})
	}

	return nil
}
