package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/infra/sessions"
)

type SignOut struct {
	store sessions.Store
	now   func() time.Time
}

func NewSignOut(store sessions.Store) *SignOut {
	return &SignOut{store: store, now: time.Now}
}

// Execute revoga o jti até a expiração natural do token.
func (uc *SignOut) Execute(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	return uc.store.Revoke(ctx, jti, expiresAt.Sub(uc.now()))
}
