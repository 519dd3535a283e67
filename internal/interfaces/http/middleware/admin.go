package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/pkg/jwt"
	"team-showcase.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminClaimsKey is the context key for validated admin claims
	AdminClaimsKey = "adminClaims"
)

// AdminAuthenticator validates admin bearer tokens. *usecases.AdminAuthUsecase satisfies it.
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>", or "".
func BearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthorizationHeader)
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
}

// AdminClaims returns the claims RequireAdmin stored on the context.
func AdminClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(AdminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

// RequireAdmin rejects requests without a valid admin token. When enforce is false
// the route stays open, which keeps the API as permissive as the demo admin panel
// expects unless ADMIN_AUTH_REQUIRED is set.
func RequireAdmin(auth AdminAuthenticator, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}

		if c.GetHeader(AuthorizationHeader) != "" && BearerToken(c) == "" {
			response.Abort(c, domainerrors.Unauthorized("invalid authorization format, use: Bearer <token>"))
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), BearerToken(c))
		if err != nil {
			logger.Warn(c.Request.Context(), "Admin authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Abort(c, err)
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
