package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
	"github.com/BruksfildServices01/service-marketplace/internal/token"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// AuthMiddleware accepts only "Bearer <jwt>" signed with the configured
// secret. Without a secret every request is rejected.
func AuthMiddleware(tokens TokenParser, revoked revocation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.Unauthorized("missing_authorization_header", "Authentication required."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Respond(c, httperr.InvalidToken("Malformed authorization header."))
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if errors.Is(err, token.ErrNoSecret) {
			logger.L().Error("request rejected: token secret not configured")
			httperr.Respond(c, httperr.Unauthorized("auth_not_configured", "Authentication is not available."))
			return
		}
		if err != nil {
			httperr.Respond(c, httperr.InvalidToken("Invalid or expired token."))
			return
		}

		// --------------------------------------------------
		// Revocation (block / password change)
		// --------------------------------------------------
		if issued := claims.IssuedTime(); revoked != nil && !issued.IsZero() {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.UserID, issued)
			if err != nil {
				logger.L().Warn("revocation check failed",
					slog.Uint64("user_id", uint64(claims.UserID)),
					slog.Any("error", err),
				)
			}
			if isRevoked {
				httperr.Respond(c, httperr.InvalidToken("Token has been revoked."))
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}

// Actor reads the identity set by AuthMiddleware.
func Actor(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:    c.GetUint(ContextUserID),
		Role:  c.GetString(ContextUserRole),
		Email: c.GetString(ContextUserEmail),
	}
}
