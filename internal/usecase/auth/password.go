package auth

import (
	"context"

	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
)

type ChangePassword struct {
	users   userdomain.Repository
	revoked revocation.Store
}

func NewChangePassword(users userdomain.Repository, revoked revocation.Store) *ChangePassword {
	return &ChangePassword{users: users, revoked: revoked}
}

// Execute replaces the password hash and invalidates tokens issued before
// the change.
func (uc *ChangePassword) Execute(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return httperr.Validation("missing_fields", "Current and new password are required.")
	}
	if err := userdomain.ValidatePassword(newPassword); err != nil {
		return err
	}

	u, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return notFoundAsInvalid(err)
	}

	if !userdomain.CheckPassword(u.PasswordHash, oldPassword) {
		return httperr.Unauthorized("invalid_credentials", "Current password is incorrect.")
	}

	hash, err := userdomain.HashPassword(newPassword)
	if err != nil {
		return httperr.Internal("failed_to_hash_password", err)
	}

	u.PasswordHash = hash
	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return httperr.Internal("failed_to_update_password", err)
	}

	revokeSessions(ctx, uc.revoked, u.ID)
	return nil
}
