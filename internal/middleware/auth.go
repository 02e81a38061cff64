package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/clinic-api/internal/service/auth"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/httputil"
)

type AuthMiddleware struct {
	authService auth.AuthService
}

func NewAuthMiddleware(authService auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the session token and sets the patient identity in
// context. The token is the raw Authorization header value, no Bearer
// prefix. Missing and invalid tokens are both forbidden.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, httputil.ErrorBody{
				Code:    errors.ErrForbidden,
				Message: "token não fornecido",
			})
			return
		}

		claims, err := m.authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, httputil.ErrorBody{
				Code:    errors.ErrForbidden,
				Message: "token inválido ou expirado",
			})
			return
		}

		c.Set("user_id", claims.UserID.String())
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Next()
	}
}
