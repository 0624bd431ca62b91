package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/bizledger/backend/internal/infrastructure/logger"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// Context keys set by the JWT middleware.
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTTenantIDKey = "jwt_tenant_id"
	JWTUsernameKey = "jwt_username"
)

// JWTMiddlewareConfig configures the JWT auth middleware.
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when nil revocation checks are skipped.
	Blacklist auth.TokenBlacklist
	// SkipPaths are exact paths that bypass authentication.
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that bypass authentication.
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// JWTAuthMiddleware returns auth middleware with no skip paths or blacklist.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{JWTService: jwtService})
}

// JWTAuthMiddlewareWithConfig returns middleware that validates the Bearer
// token, checks it against the blacklist, and stores the claims in the gin
// context. Blacklist lookups fail open: a revocation-store outage must not
// take the API down with it.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = true
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip[path] {
			c.Next()
			return
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString, ok := extractBearerToken(c)
		if !ok {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing or malformed Authorization header")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			code, message := authErrorCode(err)
			abortUnauthorized(c, code, message)
			return
		}

		if cfg.Blacklist != nil {
			revoked, err := cfg.Blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error("token blacklist lookup failed", zap.Error(err))
			} else if revoked {
				abortUnauthorized(c, dto.ErrCodeTokenRevoked, "Token has been revoked")
				return
			}

			invalidated, err := cfg.Blacklist.IsUserTokenInvalidated(c.Request.Context(), claims.UserID, claims.GetIssuedAtTime())
			if err != nil {
				log.Error("user token invalidation lookup failed", zap.Error(err))
			} else if invalidated {
				abortUnauthorized(c, dto.ErrCodeTokenRevoked, "Token has been revoked")
				return
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTTenantIDKey, claims.TenantID)
		c.Set(JWTUsernameKey, claims.Username)

		ctx, _ := logger.WithTenantID(c.Request.Context(), log, claims.TenantID)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func authErrorCode(err error) (string, string) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return dto.ErrCodeTokenInvalid, "Token is not valid yet"
	case errors.Is(err, auth.ErrMissingTenantID):
		return dto.ErrCodeTenantRequired, "Token is missing the tenant claim"
	default:
		return dto.ErrCodeTokenInvalid, "Invalid token"
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID, _ := c.Get(RequestIDKey)
	id, _ := requestID.(string)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, id))
}

// GetJWTClaims returns the validated claims for the current request.
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(JWTClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetJWTUserID returns the authenticated user ID for the current request.
func GetJWTUserID(c *gin.Context) (string, bool) {
	return getStringKey(c, JWTUserIDKey)
}

// GetJWTTenantID returns the tenant ID for the current request.
func GetJWTTenantID(c *gin.Context) (string, bool) {
	return getStringKey(c, JWTTenantIDKey)
}

// GetJWTUsername returns the username for the current request.
func GetJWTUsername(c *gin.Context) (string, bool) {
	return getStringKey(c, JWTUsernameKey)
}

func getStringKey(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
