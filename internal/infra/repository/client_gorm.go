package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) scoped(ctx context.Context, actor access.Actor) *gorm.DB {
	return access.Scope(r.db.WithContext(ctx).Model(&models.Client{}), actor, "clients.seller_id")
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *models.Client,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(c).Error, "clients: create")
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	actor access.Actor,
	f domain.Filter,
) ([]models.Client, error) {

	q := r.scoped(ctx, actor)

	if term := domain.NormalizeQuery(f.Query); term != "" {
		like := likePattern(term)
		q = q.Where(
			"clients.name ILIKE ? OR clients.email ILIKE ? OR clients.phone ILIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("clients.created_at DESC").Find(&clients).Error; err != nil {
		return nil, errors.Wrap(err, "clients: list")
	}
	return clients, nil
}

func (r *ClientGormRepository) Get(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) (*models.Client, error) {

	var c models.Client
	err := r.scoped(ctx, actor).
		Where("clients.id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound, "clients: get")
	}
	return &c, nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *models.Client,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(c).Error, "clients: update")
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	actor access.Actor,
	id uuid.UUID,
) error {

	res := access.Scope(r.db.WithContext(ctx), actor, "seller_id").
		Where("id = ?", id).
		Delete(&models.Client{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "clients: delete")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
