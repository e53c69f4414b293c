package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

import (
	"context"
	"errors"
	"time"

	"auction-sync/internal/pkg/apikey"
	"auction-sync/internal/pkg/jwt"
)

var (
	ErrInvalidAPIKey   = errors.New("invalid api key")
	ErrTokenGeneration = errors.New("token generation failed")
	ErrTokenValidation = errors.New("token validation failed")
)

type TokenPair struct {
	AccessToken string
	ExpiresAt   time.Time
	// Identity is the ledger identity the session acts as; empty when read-only.
	Identity string
}

type AuthUseCase interface {
	IssueToken(ctx context.Context, key string) (*TokenPair, error)
}

type authUseCaseImpl struct {
	apiKeyHash string
	identity   string
	jwtService *jwt.Service
}

// NewAuthUseCase issues tokens bound to identity, the signer of this deployment.
func NewAuthUseCase(apiKeyHash, identity string, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		apiKeyHash: apiKeyHash,
		identity:   identity,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) IssueToken(ctx context.Context, key string) (*TokenPair, error) {
	if err := apikey.Verify(a.apiKeyHash, key); err != nil {
		return nil, ErrInvalidAPIKey
	}

	token, expiresAt, err := a.jwtService.GenerateToken(a.identity)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &TokenPair{AccessToken: token, ExpiresAt: expiresAt, Identity: a.identity}, nil
}
