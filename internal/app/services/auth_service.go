package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/mjoly/scolaris/internal/pkg/auth"
)

// AuthService handles credential checks and token issuance
type AuthService struct {
	accounts   AccountStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtService: jwtService,
	}
}

// Login checks the credentials and returns a signed token with the
// account it authenticates. Unknown emails and wrong passwords are not
// distinguished in the returned error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Account: dto.NewAccountResponse(account),
	}, nil
}
