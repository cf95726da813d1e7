package admin

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	admindomain "github.com/BruksfildServices01/service-marketplace/internal/domain/admin"
	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ======================================================
// DELETE PROVIDER
// ======================================================

type DeleteProvider struct {
	repo  admindomain.Repository
	audit audit.Recorder
}

func NewDeleteProvider(repo admindomain.Repository, rec audit.Recorder) *DeleteProvider {
	return &DeleteProvider{repo: repo, audit: rec}
}

// Execute removes the provider, their services and the bookings addressed
// to them in a single transaction.
func (uc *DeleteProvider) Execute(ctx context.Context, actor domain.Actor, providerID uint) (*admindomain.CascadeResult, error) {
	res, err := uc.repo.DeleteProviderCascade(ctx, providerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("provider_not_found", "Provider not found.")
	}
	if err != nil {
		return nil, httperr.Internal("failed_to_delete_provider", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		Action:       "delete_provider",
		ResourceType: "user",
		ResourceID:   &providerID,
		Details:      res,
	})

	return res, nil
}

// ======================================================
// DELETE USER
// ======================================================

type DeleteUser struct {
	users     userdomain.Repository
	repo      admindomain.Repository
	audit     audit.Recorder
	providers *DeleteProvider
}

func NewDeleteUser(users userdomain.Repository, repo admindomain.Repository, rec audit.Recorder) *DeleteUser {
	return &DeleteUser{
		users:     users,
		repo:      repo,
		audit:     rec,
		providers: NewDeleteProvider(repo, rec),
	}
}

func (uc *DeleteUser) Execute(ctx context.Context, actor domain.Actor, userID uint) (*admindomain.CascadeResult, error) {
	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	switch u.Role {
	case models.RoleAdmin:
		return nil, httperr.Forbidden("cannot_delete_admin", "Admins cannot be deleted.")
	case models.RoleProvider:
		return uc.providers.Execute(ctx, actor, u.ID)
	}

	res, err := uc.repo.DeleteCustomerCascade(ctx, u.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("user_not_found", "User not found.")
	}
	if err != nil {
		return nil, httperr.Internal("failed_to_delete_user", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		Action:       "delete_user",
		ResourceType: "user",
		ResourceID:   &u.ID,
		Details: map[string]any{
			"email":          u.Email,
			"bookings_count": res.BookingsDeleted,
		},
	})

	return res, nil
}
