package order

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
)

const DefaultOverdueDays = 30

// SweepOverdue marca como atrasadas as vendas pendentes há mais de N dias.
type SweepOverdue struct {
	repo  domain.Repository
	days  int
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewSweepOverdue(
	repo domain.Repository,
	days int,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *SweepOverdue {
	if days <= 0 {
		days = DefaultOverdueDays
	}
	return &SweepOverdue{
		repo:  repo,
		days:  days,
		audit: audit,
		log:   log,
	}
}

func (uc *SweepOverdue) Execute(ctx context.Context, now time.Time) (int64, error) {
	cutoff := domain.OverdueCutoff(now, uc.days)

	n, err := uc.repo.MarkOverdue(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		uc.log.Info().Int64("orders", n).Time("cutoff", cutoff).Msg("orders marked overdue")
		uc.audit.Dispatch(audit.Event{
			Action: "orders_marked_overdue",
			Entity: "order",
			Metadata: map[string]any{
				"count":  n,
				"cutoff": cutoff,
			},
		})
	}

	return n, nil
}
