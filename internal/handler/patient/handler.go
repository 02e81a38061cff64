package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/service/patient"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/httputil"
)

type Handler struct {
	svc patient.PatientService
}

func NewHandler(svc patient.PatientService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.CreatePatient)
		users.GET("", h.ListPatients)
		users.PUT("/:id", h.UpdatePatient)
		users.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.svc.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.svc.ListPatients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("id inválido", err))
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.svc.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, updated)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("id inválido", err))
		return
	}

	if err := h.svc.DeletePatient(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, http.StatusOK, "Usuário Foi Deletado Com Sucesso!")
}
