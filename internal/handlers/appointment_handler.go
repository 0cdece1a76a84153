package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/httpresp"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	appointmentuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo   appointment.Repository
	create *appointmentuc.CreateAppointment
	agenda *appointmentuc.GetAgenda
	list   *appointmentuc.ListAppointments
	audit  *audit.Dispatcher
}

func NewAppointmentHandler(
	repo appointment.Repository,
	create *appointmentuc.CreateAppointment,
	agenda *appointmentuc.GetAgenda,
	list *appointmentuc.ListAppointments,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:   repo,
		create: create,
		agenda: agenda,
		list:   list,
		audit:  audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID     uuid.UUID `json:"client_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	Time         string    `json:"time" binding:"required"`
	Type         string    `json:"type" binding:"required"`
	Address      string    `json:"address" binding:"required"`
	Observations string    `json:"observations"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Preencha todos os campos obrigatórios.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), appointmentuc.CreateAppointmentInput{
		ClientID:     req.ClientID,
		Date:         req.Date,
		Time:         req.Time,
		Type:         req.Type,
		Address:      req.Address,
		Observations: req.Observations,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAgendaEntry(*ap, timezone.Default()))
}

// ======================================================
// AGENDA (hoje / amanhã)
// ======================================================

func (h *AppointmentHandler) Agenda(c *gin.Context) {
	agenda, err := h.agenda.Execute(c.Request.Context(), middleware.Actor(c), timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, agenda)
}

// ======================================================
// LIST (from / to)
// ======================================================

// List usa por padrão os próximos 30 dias.
func (h *AppointmentHandler) List(c *gin.Context) {
	today := timezone.Now()
	from := c.DefaultQuery("from", today.Format("2006-01-02"))
	to := c.DefaultQuery("to", today.AddDate(0, 0, 30).Format("2006-01-02"))

	items, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), from, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.ListWithMeta(c, items, gin.H{"from": from, "to": to})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	actor := middleware.Actor(c)
	if err := h.repo.DeleteAppointment(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
