package admin

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
)

// ======================================================
// LIST / GET
// ======================================================

type ListUsers struct {
	users userdomain.Repository
}

func NewListUsers(users userdomain.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(ctx context.Context, role string) ([]models.User, error) {
	if role != "" && !models.ValidRole(role) {
		return nil, httperr.Validation("invalid_role", "Unknown role.")
	}

	list, err := uc.users.ListUsers(ctx, role)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_users", err)
	}
	return list, nil
}

type GetUser struct {
	users userdomain.Repository
}

func NewGetUser(users userdomain.Repository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return loadUser(ctx, uc.users, id)
}

// ======================================================
// BLOCK / UNBLOCK
// ======================================================

type SetBlocked struct {
	users   userdomain.Repository
	audit   audit.Recorder
	revoked revocation.Store
}

func NewSetBlocked(users userdomain.Repository, rec audit.Recorder, revoked revocation.Store) *SetBlocked {
	return &SetBlocked{users: users, audit: rec, revoked: revoked}
}

// Block requires a non-empty reason and ends the user's current sessions.
func (uc *SetBlocked) Block(ctx context.Context, actor domain.Actor, userID uint, reason string) (*models.User, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, httperr.Validation("block_reason_required", "A reason is required to block a user.")
	}

	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}
	if u.Role == models.RoleAdmin {
		return nil, httperr.Forbidden("cannot_block_admin", "Admins cannot be blocked.")
	}

	u.Blocked = true
	u.BlockReason = reason

	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return nil, httperr.Internal("failed_to_block_user", err)
	}

	if uc.revoked != nil {
		if err := uc.revoked.RevokeBefore(ctx, u.ID, time.Now()); err != nil {
			logger.L().Warn("token revocation failed",
				slog.Uint64("user_id", uint64(u.ID)),
				slog.Any("error", err),
			)
		}
	}

	uc.record(actor, "block_user", u, map[string]any{"reason": reason})
	return u, nil
}

func (uc *SetBlocked) Unblock(ctx context.Context, actor domain.Actor, userID uint) (*models.User, error) {
	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	u.Blocked = false
	u.BlockReason = ""

	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return nil, httperr.Internal("failed_to_unblock_user", err)
	}

	uc.record(actor, "unblock_user", u, nil)
	return u, nil
}

func (uc *SetBlocked) record(actor domain.Actor, action string, u *models.User, details map[string]any) {
	uc.audit.Dispatch(audit.Event{
		ActorID:      &actor.ID,
		ActorEmail:   actor.Email,
		Action:       action,
		ResourceType: "user",
		ResourceID:   &u.ID,
		Details:      details,
	})
}

func loadUser(ctx context.Context, users userdomain.Repository, id uint) (*models.User, error) {
	u, err := users.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("user_not_found", "User not found.")
	}
	if err != nil {
		return nil, httperr.Internal("failed_to_get_user", err)
	}
	return u, nil
}
