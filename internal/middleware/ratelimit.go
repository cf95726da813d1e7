package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/cache"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
)

// RateLimiter counts requests per client IP in fixed windows. A nil client
// disables it, and cache errors let the request through.
func RateLimiter(client cache.Client, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rate-limit:" + prefix + ":" + c.ClientIP()

		count, err := client.Incr(ctx, key)
		if err != nil {
			logger.L().Warn("rate limiter unavailable", slog.Any("error", err))
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window); err != nil {
				logger.L().Warn("rate limiter expire failed", slog.Any("error", err))
			}
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later.")
			return
		}

		c.Next()
	}
}
