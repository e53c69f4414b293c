package response

import (
	"auction-sync/internal/usecase"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	Identity    string `json:"identity,omitempty"`
}

func FromTokenPair(p *usecase.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken: p.AccessToken,
		ExpiresAt:   p.ExpiresAt.Unix(),
		Identity:    p.Identity,
	}
}
