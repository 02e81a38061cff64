package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NotFound("usuário não encontrado", nil), http.StatusNotFound},
		{BadRequest("campos obrigatórios ausentes", nil), http.StatusBadRequest},
		{Unauthorized("senha inválida", nil), http.StatusUnauthorized},
		{Forbidden("token inválido", nil), http.StatusForbidden},
		{Conflict("email", "email já cadastrado", nil), http.StatusConflict},
		{Internal(fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus())
	}
}

func TestConflictCarriesField(t *testing.T) {
	err := Conflict("cpf", "cpf já cadastrado", nil)
	assert.Equal(t, "cpf", err.Field)
	assert.Equal(t, ErrConflict, err.Code)
}

func TestAsUnwrapsChain(t *testing.T) {
	inner := NotFound("médico não encontrado", nil)
	wrapped := fmt.Errorf("creating appointment: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestErrorIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal(cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}
