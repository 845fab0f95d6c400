// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// refreshTokenKeyPrefix namespaces refresh token keys in Redis.
const refreshTokenKeyPrefix = "refresh_token:"

// TokenStore defines the interface for refresh token storage. Tokens live in
// Redis so revocation takes effect immediately and expiry is enforced by TTL.
type TokenStore interface {
	// SaveRefreshToken registers a refresh token, expiring it at expiresAt.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid checks if a refresh token exists and has not been revoked.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken removes a refresh token. Idempotent.
	InvalidateRefreshToken(ctx context.Context, token string) error
}

// redisTokenStore implements the TokenStore interface on Redis.
type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new Redis-backed token store instance.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{
		client: client,
	}
}

// SaveRefreshToken registers a refresh token with a TTL matching its expiry.
func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired at %s", expiresAt)
	}
	if err := s.client.Set(ctx, refreshTokenKeyPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// IsRefreshTokenValid checks if a refresh token exists and has not been revoked.
func (s *redisTokenStore) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, refreshTokenKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return true, nil
}

// InvalidateRefreshToken removes a refresh token.
func (s *redisTokenStore) InvalidateRefreshToken(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshTokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}
