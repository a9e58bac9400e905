package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/auth"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	// AuthHeaderKey is the header carrying the bearer token
	AuthHeaderKey = "Authorization"
	// BearerPrefix is the scheme prefix of the token
	BearerPrefix = "Bearer "

	JWTClaimsKey   = "jwt_claims"
	JWTTenantIDKey = "jwt_tenant_id"
	JWTUserIDKey   = "jwt_user_id"
	ActorKey       = "actor"
)

// TokenValidator validates a raw bearer token
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	Validator        TokenValidator
	SkipPaths        []string
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// JWTAuth returns authentication middleware for the API group
func JWTAuth(validator TokenValidator, log *zap.Logger) gin.HandlerFunc {
	return JWTAuthWithConfig(JWTMiddlewareConfig{Validator: validator, Logger: log})
}

// JWTAuthWithConfig returns JWT middleware with custom configuration. On
// success the claims, the tenant and user ids and the workflow actor are
// stored in the gin context.
func JWTAuthWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
		if tokenString == "" {
			abortUnauthorized(c, "Missing token")
			return
		}

		claims, err := cfg.Validator.ValidateToken(tokenString)
		if err != nil {
			cfg.Logger.Debug("JWT validation failed", zap.String("path", path), zap.Error(err))
			abortUnauthorized(c, authErrorMessage(err))
			return
		}
		actor, err := claims.Actor()
		if err != nil {
			abortUnauthorized(c, authErrorMessage(err))
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTTenantIDKey, claims.TenantID)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(ActorKey, actor)

		ctx := logger.WithActor(c.Request.Context(), claims.TenantID, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return "Token is not yet valid"
	case errors.Is(err, auth.ErrMissingTenantID):
		return "Token carries no valid tenant"
	case errors.Is(err, auth.ErrMissingUserID):
		return "Token carries no valid user"
	default:
		return "Invalid token"
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(shared.ErrUnauthorized.Code, message))
}

// GetActor returns the actor stored by the JWT middleware
func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

// GetJWTClaims returns the validated claims, or nil
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
