package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
	status string,
	now time.Time,
) (*models.Order, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if err := domain.Apply(o, next, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   o.Status,
		},
	})

	return o, nil
}
