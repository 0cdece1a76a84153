package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID uuid.UUID

	Date string
	Time string

	Type         string
	Address      string
	Observations string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios do formulário
	// --------------------------------------------------
	if in.ClientID == uuid.Nil ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" ||
		strings.TrimSpace(in.Type) == "" ||
		strings.TrimSpace(in.Address) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// 2. Data / hora em America/Sao_Paulo
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(strings.TrimSpace(in.Date), strings.TrimSpace(in.Time))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Cliente visível para quem agenda
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, actor, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Dono do compromisso: o vendedor do cliente, ou quem agendou
	// --------------------------------------------------
	seller := actor.UserID
	if client.SellerID != nil && actor.IsAdmin() {
		seller = *client.SellerID
	}

	notes := domain.ComposeNotes(in.Type, in.Address, in.Observations)

	ap := &models.Appointment{
		ClientID:        &client.ID,
		SellerID:        &seller,
		AppointmentDate: start,
		Notes:           &notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.Client = client

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"type": in.Type},
	})

	return ap, nil
}
