package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authHandler "github.com/vidaplus/clinic-api/internal/handler/auth"
	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/pkg/auth"
	"github.com/vidaplus/clinic-api/pkg/errors"
)

type stubService struct {
	tokens   *model.TokenResponse
	loginErr error
}

func (s *stubService) Login(_ context.Context, email, password string) (*model.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.tokens, nil
}

func (s *stubService) ValidateToken(_ context.Context, token string) (*auth.TokenClaims, error) {
	return nil, errors.Forbidden("token inválido ou expirado", nil)
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	authHandler.NewHandler(svc).RegisterRoutes(engine.Group(""))
	return engine
}

func postLogin(engine *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsToken(t *testing.T) {
	svc := &stubService{tokens: &model.TokenResponse{Token: "signed.jwt.token"}}
	engine := setupRouter(svc)

	w := postLogin(engine, map[string]string{"email": "a@b.com", "password": "segredo"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body["token"])
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := &stubService{loginErr: errors.NotFound("usuário não encontrado", nil)}
	engine := setupRouter(svc)

	w := postLogin(engine, map[string]string{"email": "a@b.com", "password": "segredo"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &stubService{loginErr: errors.Unauthorized("senha inválida", nil)}
	engine := setupRouter(svc)

	w := postLogin(engine, map[string]string{"email": "a@b.com", "password": "errada"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "senha inválida")
}

func TestLoginMissingCredentials(t *testing.T) {
	engine := setupRouter(&stubService{})

	w := postLogin(engine, map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
