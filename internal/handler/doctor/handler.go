package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/service/doctor"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/httputil"
)

type Handler struct {
	svc doctor.DoctorService
}

func NewHandler(svc doctor.DoctorService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	r.GET("/specialties", h.ListSpecialties)
	r.GET("/specialties/:specialty", h.ListBySpecialty)
	r.GET("/todosmedicos", h.ListRoster)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.svc.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("id inválido", err))
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.svc.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("id inválido", err))
		return
	}

	if err := h.svc.DeleteDoctor(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, http.StatusOK, "Médico foi deletado com sucesso!")
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	groups, err := h.svc.ListSpecialtyGroups(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// ListBySpecialty returns the raw doctor rows for an exact specialty match;
// an unknown specialty yields an empty array, not a 404.
func (h *Handler) ListBySpecialty(c *gin.Context) {
	doctors, err := h.svc.ListBySpecialty(c.Request.Context(), c.Param("specialty"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) ListRoster(c *gin.Context) {
	roster, err := h.svc.ListRoster(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}
