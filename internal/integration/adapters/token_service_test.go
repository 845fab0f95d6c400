package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTokenStore struct {
	tokens map[string]uuid.UUID
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *memoryTokenStore) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	s.tokens[token] = userID
	return nil
}

func (s *memoryTokenStore) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *memoryTokenStore) InvalidateRefreshToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("access token round-trips its claims", func(t *testing.T) {
		svc := NewTokenService("test-secret", newMemoryTokenStore())

		pair, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
	})

	t.Run("refresh token is not accepted as an access token", func(t *testing.T) {
		svc := NewTokenService("test-secret", newMemoryTokenStore())

		pair, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("tokens issued within the same second are distinct", func(t *testing.T) {
		svc := NewTokenService("test-secret", newMemoryTokenStore())

		first, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)
		second, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
		assert.NotEqual(t, first.AccessToken, second.AccessToken)
	})

	t.Run("revoked refresh token stays revoked after a same-second reissue", func(t *testing.T) {
		store := newMemoryTokenStore()
		svc := NewTokenService("test-secret", store)

		old, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		require.NoError(t, svc.InvalidateRefreshToken(ctx, old.RefreshToken))
		fresh, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateRefreshToken(ctx, old.RefreshToken)
		assert.Error(t, err)
		_, err = svc.ValidateRefreshToken(ctx, fresh.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		store := newMemoryTokenStore()
		issuer := NewTokenService("one-secret", store)
		verifier := NewTokenService("another-secret", store)

		pair, err := issuer.GenerateTokenPair(ctx, userID, "ana@example.com")
		require.NoError(t, err)

		_, err = verifier.ValidateAccessToken(ctx, pair.AccessToken)
		assert.Error(t, err)
	})
}
