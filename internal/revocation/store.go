package revocation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/cache"
)

// Store records, per user, the instant before which issued tokens are no
// longer accepted. Blocking a user and changing a password move it forward.
type Store interface {
	RevokeBefore(ctx context.Context, userID uint, t time.Time) error
	IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error)
}

// Noop keeps stateless tokens valid until they expire.
type Noop struct{}

func (Noop) RevokeBefore(context.Context, uint, time.Time) error { return nil }

func (Noop) IsRevoked(context.Context, uint, time.Time) (bool, error) { return false, nil }

type RedisStore struct {
	client cache.Client
	ttl    time.Duration
}

// NewRedisStore keeps each marker for ttl, the lifetime of a token; older
// tokens are expired anyway.
func NewRedisStore(client cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(userID uint) string {
	return fmt.Sprintf("auth:valid_after:%d", userID)
}

// RevokeBefore stores t in milliseconds. Tokens issued at or before that
// instant are rejected, so a token minted in the same second as the change
// cannot slip through.
func (s *RedisStore) RevokeBefore(ctx context.Context, userID uint, t time.Time) error {
	return s.client.Set(ctx, key(userID), t.UnixMilli(), s.ttl)
}

func (s *RedisStore) IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error) {
	raw, err := s.client.Get(ctx, key(userID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	validAfter, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse revocation marker: %w", err)
	}

	return issuedAt.UnixMilli() <= validAfter, nil
}
