package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// AdminSetup creates the configured admin account if it does not exist yet.
type AdminSetup struct {
	users   userdomain.Repository
	audit   audit.Recorder
	account AdminAccount
}

func NewAdminSetup(users userdomain.Repository, rec audit.Recorder, account AdminAccount) *AdminSetup {
	return &AdminSetup{users: users, audit: rec, account: account}
}

// Execute reports whether the account was created by this call.
func (uc *AdminSetup) Execute(ctx context.Context) (*models.User, bool, error) {
	email := userdomain.NormalizeEmail(uc.account.Email)
	if email == "" || uc.account.Password == "" {
		return nil, false, httperr.ErrBusiness("admin_not_configured", "Admin credentials are not configured.")
	}
	if !validators.IsEmail(email) {
		return nil, false, httperr.Validation("invalid_email", "Configured admin email is invalid.")
	}

	existing, err := uc.users.GetUserByEmail(ctx, email)
	if err == nil {
		if existing.Role != models.RoleAdmin {
			return nil, false, httperr.Conflict("email_taken", "Admin email belongs to another account.")
		}
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, httperr.Internal("failed_to_get_user", err)
	}

	if err := userdomain.ValidatePassword(uc.account.Password); err != nil {
		return nil, false, err
	}

	hash, err := userdomain.HashPassword(uc.account.Password)
	if err != nil {
		return nil, false, httperr.Internal("failed_to_hash_password", err)
	}

	name := strings.TrimSpace(uc.account.Name)
	if name == "" {
		name = "Admin"
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Verified:     true,
	}

	if err := uc.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost a race with a concurrent setup.
			existing, getErr := uc.users.GetUserByEmail(ctx, email)
			if getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, httperr.Internal("failed_to_create_admin", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:      &u.ID,
		ActorEmail:   u.Email,
		Action:       "admin_setup",
		ResourceType: "user",
		ResourceID:   &u.ID,
	})

	return u, true, nil
}
