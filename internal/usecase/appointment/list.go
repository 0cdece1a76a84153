package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

const maxRangeDays = 366

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  timezone.Default(),
	}
}

// Execute lista de from (inclusive) até to (inclusive), datas YYYY-MM-DD.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor access.Actor,
	from string,
	to string,
) ([]dto.AgendaEntryDTO, error) {

	start, err := timezone.ParseDate(from)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	last, err := timezone.ParseDate(to)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := last.AddDate(0, 0, 1)
	if !end.After(start) || end.Sub(start) > maxRangeDays*24*time.Hour {
		return nil, httperr.ErrBusiness("invalid_period")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, actor, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendaEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAgendaEntry(ap, uc.loc))
	}
	return out, nil
}
