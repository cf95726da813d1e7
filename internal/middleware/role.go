package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// HasRole is the predicate behind RequireRole.
func HasRole(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole must run after AuthMiddleware.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasRole(c.GetString(ContextUserRole), allowed...) {
			httperr.Respond(c, httperr.Forbidden("forbidden", "Insufficient permissions."))
			return
		}
		c.Next()
	}
}
