//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"auction-sync/internal/handler/dto/request"
	"auction-sync/internal/handler/dto/response"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/pkg/jwt"
	"auction-sync/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(identity)
	require.NoError(t, err)
	return token
}

// IssueToken exchanges apiKey for a token through the API.
func IssueToken(t *testing.T, router *gin.Engine, apiKey string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/token",
		request.TokenRequest{APIKey: apiKey}, "")
	var res response.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken, "access token missing from response")
	return res.AccessToken
}
