package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

// SetActive é o "Desativar"/"Ativar" da tela de Vendedores (somente admin).
type SetActive struct {
	profiles domain.Repository
	audit    *audit.Dispatcher
}

func NewSetActive(profiles domain.Repository, audit *audit.Dispatcher) *SetActive {
	return &SetActive{profiles: profiles, audit: audit}
}

func (uc *SetActive) Execute(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
	active bool,
) (*models.Profile, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrBusiness("no_permission")
	}
	if !active && id == actor.UserID {
		return nil, httperr.ErrBusiness("cannot_deactivate_self")
	}

	p, err := uc.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Active == active {
		return p, nil
	}

	p.Active = active
	if err := uc.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	action := "profile_activated"
	if !active {
		action = "profile_deactivated"
	}
	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "profile",
		EntityID: &p.UserID,
	})

	return p, nil
}
