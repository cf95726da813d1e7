package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/logger"
)

// Emit publishes best effort; failures are only logged.
func Emit(ctx context.Context, p Publisher, key string, v any) {
	if p == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()

	if err := p.Publish(ctx, key, v); err != nil {
		logger.L().Warn("event publish failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
