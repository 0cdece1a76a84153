package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type finderFunc func(ctx context.Context, id uuid.UUID) (*models.Profile, error)

func (f finderFunc) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return f(ctx, id)
}

func TestResolveSeller(t *testing.T) {
	seller := &models.Profile{UserID: uuid.New(), Role: string(RoleVendedor), Active: true}
	inactive := &models.Profile{UserID: uuid.New(), Role: string(RoleVendedor)}
	admin := &models.Profile{UserID: uuid.New(), Role: string(RoleAdmin), Active: true}

	byID := map[uuid.UUID]*models.Profile{
		seller.UserID:   seller,
		inactive.UserID: inactive,
		admin.UserID:    admin,
	}
	finder := finderFunc(func(_ context.Context, id uuid.UUID) (*models.Profile, error) {
		if p, ok := byID[id]; ok {
			return p, nil
		}
		return nil, ErrNotFound
	})

	p, err := ResolveSeller(context.Background(), finder, seller.UserID)
	require.NoError(t, err)
	assert.Equal(t, seller.UserID, p.UserID)

	for _, id := range []uuid.UUID{inactive.UserID, admin.UserID, uuid.New()} {
		_, err := ResolveSeller(context.Background(), finder, id)
		assert.True(t, httperr.IsBusiness(err, "seller_not_found"))
	}

	// falha de banco não vira 400
	boom := errors.New("connection reset")
	_, err = ResolveSeller(context.Background(), finderFunc(func(context.Context, uuid.UUID) (*models.Profile, error) {
		return nil, boom
	}), seller.UserID)
	assert.ErrorIs(t, err, boom)
}
