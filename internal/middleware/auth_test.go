package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/clinic-api/internal/middleware"
	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/pkg/auth"
	"github.com/vidaplus/clinic-api/pkg/errors"
)

type stubAuthService struct {
	claims *auth.TokenClaims
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*model.TokenResponse, error) {
	return nil, errors.NotFound("usuário não encontrado", nil)
}

func (s *stubAuthService) ValidateToken(_ context.Context, token string) (*auth.TokenClaims, error) {
	if s.claims == nil || token != "valido" {
		return nil, errors.Forbidden("token inválido ou expirado", nil)
	}
	return s.claims, nil
}

func setupGuarded(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.NewAuthMiddleware(svc).Authenticate())
	engine.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("user_id")})
	})
	return engine
}

func TestAuthenticateMissingToken(t *testing.T) {
	engine := setupGuarded(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "token não fornecido")
}

func TestAuthenticateInvalidToken(t *testing.T) {
	engine := setupGuarded(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "qualquer-coisa")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "token inválido ou expirado")
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	userID := uuid.New()
	engine := setupGuarded(&stubAuthService{claims: &auth.TokenClaims{
		UserID: userID,
		Email:  "a@b.com",
		Name:   "Paciente",
	}})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "valido")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
