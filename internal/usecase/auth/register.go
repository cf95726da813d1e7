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

type RegisterInput struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required"`
	Role     string `validate:"omitempty,oneof=customer provider"`
	Phone    string `validate:"max=20"`
}

type Register struct {
	users  userdomain.Repository
	tokens TokenIssuer
}

func NewRegister(users userdomain.Repository, tokens TokenIssuer) *Register {
	return &Register{users: users, tokens: tokens}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = userdomain.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Role == models.RoleAdmin {
		return nil, httperr.Forbidden("admin_signup_forbidden", "Admin accounts cannot be registered.")
	}

	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := userdomain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := userdomain.HashPassword(in.Password)
	if err != nil {
		return nil, httperr.Internal("failed_to_hash_password", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Role:         role,
	}

	if err := uc.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Conflict("email_taken", "Email already registered.")
		}
		return nil, httperr.Internal("failed_to_create_user", err)
	}

	return issue(uc.tokens, u)
}
