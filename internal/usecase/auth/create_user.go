package auth

import (
	"context"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

type CreateUserResult struct {
	Profile *models.Profile `json:"profile"`
	Message string          `json:"message"`
}

// CreateUser é o cadastro feito por um usuário logado. Vendedor só cria vendedor.
type CreateUser struct {
	profiles  profile.Repository
	passwords Passwords
	domains   DomainChecker
	audit     *audit.Dispatcher
}

func NewCreateUser(
	profiles profile.Repository,
	passwords Passwords,
	domains DomainChecker,
	audit *audit.Dispatcher,
) *CreateUser {
	if domains == nil {
		domains = validators.IsEmailDomainValid
	}
	return &CreateUser{
		profiles:  profiles,
		passwords: passwords,
		domains:   domains,
		audit:     audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	actor access.Actor,
	in SignUpInput,
) (*CreateUserResult, error) {

	target, err := profile.ParseRole(in.UserData.Role)
	if err != nil {
		return nil, err
	}

	if err := profile.CanCreate(actor.Role, target); err != nil {
		return nil, err
	}

	p, err := buildProfile(in, target, uc.passwords, uc.domains)
	if err != nil {
		return nil, err
	}

	if err := uc.profiles.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID(actor),
		Action:   "profile_created",
		Entity:   "profile",
		EntityID: &p.UserID,
		Metadata: map[string]string{"role": string(target)},
	})

	msg := "Vendedor cadastrado com sucesso!"
	if target == profile.RoleAdmin {
		msg = "Administrador cadastrado com sucesso!"
	}

	return &CreateUserResult{Profile: p, Message: msg}, nil
}
