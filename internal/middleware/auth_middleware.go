package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/mjoly/scolaris/internal/pkg/auth"
)

// accountContextKey is the gin context key the resolved account is
// stored under.
const accountContextKey = "account"

// AccountResolver resolves a token subject to a stored account.
type AccountResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

// AuthMiddleware is the authentication and authorization gate run in
// front of every protected route.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	accounts   AccountResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, accounts AccountResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		accounts:   accounts,
	}
}

// JWTAuth validates the bearer token, resolves its subject to an
// account and attaches the account to the request context. Requests
// without a valid, resolvable token are rejected with 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		account, err := m.accounts.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			status := http.StatusInternalServerError
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			if errors.Is(err, apperrors.ErrAccountNotFound) {
				status = http.StatusUnauthorized
				errorDetail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed")
				errorDetail = errorDetail.WithDetails("Account no longer exists")
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// RolesRequired rejects callers whose role is not in the allow-list.
// Must run after JWTAuth.
func (m *AuthMiddleware) RolesRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if account.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// CurrentAccount returns the account attached by JWTAuth, or nil.
func CurrentAccount(c *gin.Context) *models.Account {
	value, exists := c.Get(accountContextKey)
	if !exists {
		return nil
	}
	account, ok := value.(*models.Account)
	if !ok {
		return nil
	}
	return account
}
