package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/app/services"
	"github.com/mjoly/scolaris/internal/middleware"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates with email and password and returns a bearer
// token together with the account it identifies.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Me returns the account resolved by the authentication gate.
func (c *AuthController) Me(ctx *gin.Context) {
	account := middleware.CurrentAccount(ctx)
	if account == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAccountResponse(account)))
}

// Register always refuses. Accounts are provisioned by administrators;
// the endpoint exists so clients get an explicit answer instead of 404.
func (c *AuthController) Register(ctx *gin.Context) {
	middleware.HandleAPIError(ctx, apperrors.ErrRegistrationDisabled)
}
