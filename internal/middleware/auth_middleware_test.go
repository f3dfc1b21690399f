package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/mjoly/scolaris/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountResolver struct {
	accounts map[int64]*models.Account
}

func (f *fakeAccountResolver) GetByID(_ context.Context, id int64) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func newTestGate(accounts ...*models.Account) (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scolaris.test",
	})

	resolver := &fakeAccountResolver{accounts: make(map[int64]*models.Account)}
	for _, account := range accounts {
		resolver.accounts[account.ID] = account
	}

	return NewAuthMiddleware(jwtService, resolver), jwtService
}

func newTestRouter(gate *AuthMiddleware, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/protected")
	group.Use(gate.JWTAuth())
	if len(roles) > 0 {
		group.Use(gate.RolesRequired(roles...))
	}
	group.GET("", func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no account in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": account.Email})
	})

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	gate, _ := newTestGate()
	router := newTestRouter(gate)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	gate, _ := newTestGate()
	router := newTestRouter(gate)

	w := doRequest(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	gate, _ := newTestGate()
	router := newTestRouter(gate)

	w := doRequest(router, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	account := &models.Account{ID: 1, Email: "admin@scolaris.local", Role: models.RoleAdmin}
	gate, jwtService := newTestGate(account)
	router := newTestRouter(gate)

	token, _, err := jwtService.GenerateToken(account)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@scolaris.local")
}

func TestJWTAuth_DeletedAccount(t *testing.T) {
	account := &models.Account{ID: 7, Email: "ghost@scolaris.local", Role: models.RoleStudent}
	gate, jwtService := newTestGate() // resolver knows nothing
	router := newTestRouter(gate)

	token, _, err := jwtService.GenerateToken(account)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRolesRequired_Allowed(t *testing.T) {
	account := &models.Account{ID: 2, Email: "registrar@scolaris.local", Role: models.RoleRegistrar}
	gate, jwtService := newTestGate(account)
	router := newTestRouter(gate, models.RoleAdmin, models.RoleRegistrar)

	token, _, err := jwtService.GenerateToken(account)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRolesRequired_Forbidden(t *testing.T) {
	account := &models.Account{ID: 3, Email: "student@scolaris.local", Role: models.RoleStudent}
	gate, jwtService := newTestGate(account)
	router := newTestRouter(gate, models.RoleAdmin)

	token, _, err := jwtService.GenerateToken(account)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
