package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"auction-sync/internal/handler/httperr"
	"auction-sync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxIdentityKey = "identity"
	ctxClaimsKey   = "jwt_claims"
	bearerPrefix   = "Bearer "
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Set(ctxClaimsKey, map[string]any{
			"identity": identity,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}

// GetIdentity returns the ledger identity bound to the request's token. It is empty for
// read-only sessions; ok is false when RequireAuth did not run.
func GetIdentity(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return "", false
	}
	identity, ok := v.(string)
	return identity, ok
}
