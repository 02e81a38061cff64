package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/service/auth"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/httputil"
)

type Handler struct {
	svc auth.AuthService
}

func NewHandler(svc auth.AuthService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// RegisterProtectedRoutes registers routes that require a valid session
// token; the auth middleware runs before these.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/protected", h.Protected)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	tokens, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Protected is the example route demonstrating token-guarded access; the
// middleware has already placed the decoded identity in the context.
func (h *Handler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "acesso autorizado",
		"userId":  c.GetString("user_id"),
	})
}
