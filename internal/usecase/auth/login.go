package auth

import (
	"context"

	userdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type Login struct {
	users  userdomain.Repository
	tokens TokenIssuer
}

func NewLogin(users userdomain.Repository, tokens TokenIssuer) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Result, error) {
	email = userdomain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.Validation("missing_credentials", "Email and password are required.")
	}

	u, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFoundAsInvalid(err)
	}

	// Blocked accounts are refused whatever the password.
	if u.Blocked {
		return nil, errAccountBlocked
	}

	if !userdomain.CheckPassword(u.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	return issue(uc.tokens, u)
}
