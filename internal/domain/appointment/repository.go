package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("appointment_not_found")

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		actor access.Actor,
		clientID uuid.UUID,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		actor access.Actor,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		actor access.Actor,
		id uuid.UUID,
	) error
}
