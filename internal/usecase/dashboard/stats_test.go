package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	ordersuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

type fakeCounter struct {
	err error
}

func (f fakeCounter) CountBaskets(context.Context, access.Actor) (int64, error) { return 12, nil }
func (f fakeCounter) CountActiveClients(context.Context, access.Actor) (int64, error) {
	return 8, nil
}
func (f fakeCounter) CountSellers(_ context.Context, a access.Actor) (int64, error) {
	if a.IsAdmin() {
		return 4, nil
	}
	return 1, nil
}
func (f fakeCounter) CountPending(context.Context, access.Actor) (int64, error) { return 3, f.err }

// recentOnly implementa só o que o dashboard usa do repositório de vendas.
type recentOnly struct {
	domain.Repository
	rows []domain.Row
}

func (r recentOnly) Recent(_ context.Context, _ access.Actor, limit int) ([]domain.Row, error) {
	if len(r.rows) > limit {
		return r.rows[:limit], nil
	}
	return r.rows, nil
}

func TestGetDashboard(t *testing.T) {
	now := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)

	var rows []domain.Row
	for i := 0; i < 7; i++ {
		rows = append(rows, domain.Row{
			Order:      models.Order{ID: uuid.New(), Amount: 700, Status: "pendente", CreatedAt: now.AddDate(0, 0, -i)},
			ClientName: "Cliente",
		})
	}

	uc := NewGetDashboard(fakeCounter{}, ordersuc.NewRecentOrders(recentOnly{rows: rows}))

	seller := access.Actor{UserID: uuid.New(), Role: profile.RoleVendedor}
	res, err := uc.Execute(context.Background(), seller, now)
	require.NoError(t, err)

	assert.Equal(t, Stats{TotalBaskets: 12, ActiveClients: 8, Sellers: 1, PendingItems: 3}, res.Stats)
	assert.Len(t, res.RecentOrders, ordersuc.DefaultRecentLimit)

	admin := access.Actor{UserID: uuid.New(), Role: profile.RoleAdmin}
	res, err = uc.Execute(context.Background(), admin, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.Stats.Sellers)
}

func TestGetDashboard_PropagatesErrors(t *testing.T) {
	boom := errors.New("db down")
	uc := NewGetDashboard(fakeCounter{err: boom}, ordersuc.NewRecentOrders(recentOnly{}))

	_, err := uc.Execute(context.Background(), access.Actor{UserID: uuid.New(), Role: profile.RoleAdmin}, time.Now())
	assert.ErrorIs(t, err, boom)
}
