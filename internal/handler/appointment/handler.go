package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/service/appointment"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/httputil"
)

type Handler struct {
	svc appointment.AppointmentService
}

func NewHandler(svc appointment.AppointmentService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/doctor/:crm", h.ListByDoctorCRM)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.svc.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created.ToResponse())
}

func (h *Handler) ListByDoctorCRM(c *gin.Context) {
	crm := c.Param("crm")
	if crm == "" {
		httputil.RespondWithError(c, errors.BadRequest("crm é obrigatório", nil))
		return
	}

	details, err := h.svc.ListByDoctorCRM(c.Request.Context(), crm)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	out := make([]*model.AppointmentDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, d.ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("id inválido", err))
		return
	}

	if err := h.svc.DeleteAppointment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, http.StatusOK, "Consulta foi deletada com sucesso!")
}
