package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	actor access.Actor,
	clientID uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	err := access.Scope(r.db.WithContext(ctx), actor, "seller_id").
		Where("id = ?", clientID).
		First(&client).Error
	if err != nil {
		return nil, notFoundOr(err, clientdomain.ErrNotFound, "appointments: get client")
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(ap).Error, "appointments: create")
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	actor access.Actor,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := access.Scope(r.db.WithContext(ctx), actor, "appointments.seller_id").
		Preload("Client").
		Where(
			"appointments.appointment_date >= ? AND appointments.appointment_date < ?",
			start,
			end,
		).
		Order("appointments.appointment_date ASC").
		Find(&apps).Error

	if err != nil {
		return nil, errors.Wrap(err, "appointments: list period")
	}

	return apps, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) error {

	res := access.Scope(r.db.WithContext(ctx), actor, "seller_id").
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "appointments: delete")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
