package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists and finds a JTI", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		err := blacklist.AddToBlacklist(ctx, "jti-1", time.Minute)
		require.NoError(t, err)

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("unknown JTI is not blacklisted", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		blacklisted, err := blacklist.IsBlacklisted(ctx, "unknown")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("expired entries are evicted", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		err := blacklist.AddToBlacklist(ctx, "jti-2", -time.Second)
		require.NoError(t, err)

		blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("user invalidation rejects previously issued tokens", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		issuedAt := time.Now().Add(-time.Minute)
		err := blacklist.AddUserTokensToBlacklist(ctx, "user-1", time.Hour)
		require.NoError(t, err)

		invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "user-1", issuedAt)
		require.NoError(t, err)
		assert.True(t, invalidated)
	})

	t.Run("user invalidation allows tokens issued afterwards", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		err := blacklist.AddUserTokensToBlacklist(ctx, "user-2", time.Hour)
		require.NoError(t, err)

		invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "user-2", time.Now().Add(time.Second))
		require.NoError(t, err)
		assert.False(t, invalidated)
	})

	t.Run("other users are unaffected", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		err := blacklist.AddUserTokensToBlacklist(ctx, "user-3", time.Hour)
		require.NoError(t, err)

		invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "someone-else", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, invalidated)
	})
}
