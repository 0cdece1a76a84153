package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/report"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

func (r *OrderGormRepository) CreateCheckout(
	ctx context.Context,
	basket *models.Basket,
	o *models.Order,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(basket).Error; err != nil {
			return err
		}

		o.BasketID = &basket.ID
		return tx.Create(o).Error
	})

	return errors.Wrap(err, "orders: checkout")
}

// --------------------------------------------------
// Single order
// --------------------------------------------------

func (r *OrderGormRepository) Get(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) (*models.Order, error) {

	var o models.Order
	err := access.Scope(r.db.WithContext(ctx), actor, "seller_id").
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound, "orders: get")
	}
	return &o, nil
}

func (r *OrderGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound, "orders: get by id")
	}
	return &o, nil
}

func (r *OrderGormRepository) Update(
	ctx context.Context,
	o *models.Order,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(o).Error, "orders: update")
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *OrderGormRepository) withClient(ctx context.Context, actor access.Actor) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, baskets.client_id AS client_id, COALESCE(clients.name, '') AS client_name").
		Joins("LEFT JOIN baskets ON baskets.id = orders.basket_id").
		Joins("LEFT JOIN clients ON clients.id = baskets.client_id")

	return access.Scope(q, actor, "orders.seller_id")
}

func (r *OrderGormRepository) List(
	ctx context.Context,
	actor access.Actor,
	f domain.Filter,
) ([]domain.Row, error) {

	q := r.withClient(ctx, actor)

	if f.Status != nil {
		q = q.Where("orders.status = ?", string(*f.Status))
	}
	if f.From != nil {
		q = q.Where("orders.created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("orders.created_at < ?", *f.To)
	}

	var rows []domain.Row
	if err := q.Order("orders.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "orders: list")
	}
	return rows, nil
}

func (r *OrderGormRepository) Recent(
	ctx context.Context,
	actor access.Actor,
	limit int,
) ([]domain.Row, error) {

	var rows []domain.Row
	err := r.withClient(ctx, actor).
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "orders: recent")
	}
	return rows, nil
}

// --------------------------------------------------
// Jobs
// --------------------------------------------------

func (r *OrderGormRepository) MarkOverdue(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at <= ?", string(domain.StatusPendente), cutoff).
		Update("status", string(domain.StatusAtrasado))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "orders: mark overdue")
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// Report
// --------------------------------------------------

func (r *OrderGormRepository) Rows(
	ctx context.Context,
	actor access.Actor,
	start time.Time,
	end time.Time,
) ([]report.Row, error) {

	q := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id AS order_id, clients.id AS client_id, COALESCE(clients.name, '') AS client_name,
			orders.amount, orders.payment_plan, orders.created_at`).
		// LEFT: vendas de clientes excluídos (baskets.client_id NULL) continuam no total
		Joins("LEFT JOIN baskets ON baskets.id = orders.basket_id").
		Joins("LEFT JOIN clients ON clients.id = baskets.client_id").
		Where("orders.status <> ?", string(domain.StatusCancelado)).
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end)

	var rows []report.Row
	if err := access.Scope(q, actor, "orders.seller_id").
		Order("orders.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "orders: report rows")
	}
	return rows, nil
}

// Compile-time check
var (
	_ domain.Repository = (*OrderGormRepository)(nil)
	_ report.Source     = (*OrderGormRepository)(nil)
)
