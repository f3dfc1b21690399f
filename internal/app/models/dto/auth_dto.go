package dto

import "github.com/mjoly/scolaris/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AccountResponse represents basic account information
type AccountResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Account AccountResponse `json:"account"`
}

// NewAccountResponse maps an account model to its response DTO
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	}
}
