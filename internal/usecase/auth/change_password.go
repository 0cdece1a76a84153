package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

type ChangePasswordInput struct {
	Current string
	New     string
	Confirm string
}

type ChangePassword struct {
	profiles  profile.Repository
	passwords Passwords
	audit     *audit.Dispatcher
}

func NewChangePassword(
	profiles profile.Repository,
	passwords Passwords,
	audit *audit.Dispatcher,
) *ChangePassword {
	return &ChangePassword{
		profiles:  profiles,
		passwords: passwords,
		audit:     audit,
	}
}

func (uc *ChangePassword) Execute(
	ctx context.Context,
	userID uuid.UUID,
	in ChangePasswordInput,
) error {

	if in.New != in.Confirm {
		return httperr.ErrBusiness("password_mismatch")
	}

	p, err := uc.profiles.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !uc.passwords.Matches(p.PasswordHash, in.Current) {
		return httperr.ErrBusiness("wrong_current_password")
	}

	hash, err := uc.passwords.Hash(in.New)
	if err != nil {
		return err
	}

	p.PasswordHash = hash
	if err := uc.profiles.Update(ctx, p); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "password_changed",
		Entity:   "profile",
		EntityID: &userID,
	})
	return nil
}
