package api

import (
	"errors"
	"net/http"

	reqdto "auction-sync/internal/handler/dto/request"
	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/handler/httperr"
	"auction-sync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Issue access token
// @Description Exchange the operator API key for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	pair, err := h.authUseCase.IssueToken(c.Request.Context(), req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAPIKey):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid API key", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}
