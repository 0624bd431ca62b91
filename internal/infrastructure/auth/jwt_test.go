package auth

import (
	"testing"
	"time"

	"github.com/bizledger/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-jwt-signing-32b",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "bizledger-test",
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := newTestJWTService()

	t.Run("generates a valid token", func(t *testing.T) {
		tenantID := uuid.New()
		userID := uuid.New()

		token, err := service.GenerateToken(GenerateTokenInput{
			TenantID: tenantID,
			UserID:   userID,
			Username: "clerk",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), token.ExpiresAt, 5*time.Second)

		claims, err := service.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, tenantID.String(), claims.TenantID)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "clerk", claims.Username)
		assert.NotEmpty(t, claims.ID)
	})
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestJWTService()

	t.Run("rejects a garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "another-secret-key-entirely-32bytes",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "bizledger-test",
		})
		token, err := other.GenerateToken(GenerateTokenInput{
			TenantID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		_, err = service.ValidateToken(token.AccessToken)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-for-jwt-signing-32b",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "bizledger-test",
		})
		token, err := expired.GenerateToken(GenerateTokenInput{
			TenantID: uuid.New(),
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		_, err = service.ValidateToken(token.AccessToken)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestClaims_Helpers(t *testing.T) {
	service := newTestJWTService()

	t.Run("parses tenant and user UUIDs", func(t *testing.T) {
		tenantID := uuid.New()
		userID := uuid.New()

		token, err := service.GenerateToken(GenerateTokenInput{TenantID: tenantID, UserID: userID})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token.AccessToken)
		require.NoError(t, err)

		gotTenant, err := claims.GetTenantUUID()
		require.NoError(t, err)
		assert.Equal(t, tenantID, gotTenant)

		gotUser, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
	})

	t.Run("reports remaining TTL", func(t *testing.T) {
		token, err := service.GenerateToken(GenerateTokenInput{TenantID: uuid.New(), UserID: uuid.New()})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token.AccessToken)
		require.NoError(t, err)

		ttl := claims.GetRemainingTTL()
		assert.Greater(t, ttl, 14*time.Minute)
		assert.LessOrEqual(t, ttl, 15*time.Minute)
	})
}
