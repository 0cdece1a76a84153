package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

// GetAgenda monta a tela Agenda: compromissos de hoje e de amanhã.
type GetAgenda struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAgenda(repo domain.Repository) *GetAgenda {
	return &GetAgenda{
		repo: repo,
		loc:  timezone.Default(),
	}
}

func (uc *GetAgenda) Execute(
	ctx context.Context,
	actor access.Actor,
	now time.Time,
) (*dto.AgendaDTO, error) {

	start, end := domain.Window(now, uc.loc)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, actor, start, end)
	if err != nil {
		return nil, err
	}

	split := domain.SplitAgenda(appointments, now, uc.loc)
	today := start
	tomorrow := start.AddDate(0, 0, 1)

	return &dto.AgendaDTO{
		Hoje:   dto.NewAgendaDay(dto.LabelHoje(today), today, split.Hoje, uc.loc),
		Amanha: dto.NewAgendaDay(dto.LabelAmanha(tomorrow), tomorrow, split.Amanha, uc.loc),
	}, nil
}
