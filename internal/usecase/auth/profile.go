package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

type Me struct {
	users userdomain.Repository
}

func NewMe(users userdomain.Repository) *Me {
	return &Me{users: users}
}

func (uc *Me) Execute(ctx context.Context, userID uint) (*models.User, error) {
	return loadUser(ctx, uc.users, userID)
}

type UpdateProfileInput struct {
	Name  *string `validate:"omitempty,min=1,max=100"`
	Phone *string `validate:"omitempty,max=20"`
}

type UpdateProfile struct {
	users userdomain.Repository
}

func NewUpdateProfile(users userdomain.Repository) *UpdateProfile {
	return &UpdateProfile{users: users}
}

func (uc *UpdateProfile) Execute(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return nil, httperr.Internal("failed_to_update_profile", err)
	}
	return u, nil
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
