package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

// Result is returned by login and register.
type Result struct {
	Token string
	User  *models.User
}

var (
	errInvalidCredentials = httperr.Unauthorized("invalid_credentials", "Invalid email or password.")
	errAccountBlocked     = httperr.Forbidden("account_blocked", "Account is blocked.")
)

func issue(tokens TokenIssuer, u *models.User) (*Result, error) {
	tok, err := tokens.Issue(u)
	if err != nil {
		return nil, httperr.Internal("failed_to_issue_token", err)
	}
	return &Result{Token: tok, User: u}, nil
}

func notFoundAsInvalid(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errInvalidCredentials
	}
	return httperr.Internal("failed_to_get_user", err)
}

// revokeSessions moves the user's token cutoff to now. Store failures are
// logged; the stateless expiry still applies.
func revokeSessions(ctx context.Context, store revocation.Store, userID uint) {
	if store == nil {
		return
	}
	if err := store.RevokeBefore(ctx, userID, time.Now()); err != nil {
		logger.L().Warn("token revocation failed",
			slog.Uint64("user_id", uint64(userID)),
			slog.Any("error", err),
		)
	}
}
