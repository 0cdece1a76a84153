package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

// DashboardGormRepository faz as contagens dos cards do dashboard.
// Cada método é uma consulta independente para poderem rodar em paralelo.
type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) CountBaskets(ctx context.Context, actor access.Actor) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).
		Model(&models.Basket{}).
		Joins("JOIN clients ON clients.id = baskets.client_id")

	if err := access.Scope(q, actor, "clients.seller_id").Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "dashboard: count baskets")
	}
	return n, nil
}

// CountActiveClients conta clientes com pelo menos uma venda.
func (r *DashboardGormRepository) CountActiveClients(ctx context.Context, actor access.Actor) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN baskets ON baskets.id = orders.basket_id").
		Select("COUNT(DISTINCT baskets.client_id)")

	if err := access.Scope(q, actor, "orders.seller_id").Scan(&n).Error; err != nil {
		return 0, errors.Wrap(err, "dashboard: count active clients")
	}
	return n, nil
}

func (r *DashboardGormRepository) CountSellers(ctx context.Context, actor access.Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 1, nil
	}

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("role = ? AND active = ?", string(profile.RoleVendedor), true).
		Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "dashboard: count sellers")
	}
	return n, nil
}

// CountPending soma pendentes e atrasadas.
func (r *DashboardGormRepository) CountPending(ctx context.Context, actor access.Actor) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status IN ?", []string{string(order.StatusPendente), string(order.StatusAtrasado)})

	if err := access.Scope(q, actor, "seller_id").Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "dashboard: count pending")
	}
	return n, nil
}
