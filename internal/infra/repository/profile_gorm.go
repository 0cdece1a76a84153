package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

// EmailByUsername resolve o nome de usuário digitado no login para o e-mail da conta.
func (r *ProfileGormRepository) EmailByUsername(
	ctx context.Context,
	username string,
) (string, error) {

	var p models.Profile
	err := r.db.WithContext(ctx).
		Select("email").
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&p).Error
	if err != nil {
		return "", notFoundOr(err, domain.ErrUsernameNotFound, "profiles: email by username")
	}
	return p.Email, nil
}

func (r *ProfileGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Profile, error) {

	var p models.Profile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&p).Error
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound, "profiles: find by email")
	}
	return &p, nil
}

func (r *ProfileGormRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound, "profiles: find by id")
	}
	return &p, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ProfileGormRepository) Create(
	ctx context.Context,
	p *models.Profile,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return uniqueOr(err, "profiles: create")
	}
	return nil
}

func (r *ProfileGormRepository) Update(
	ctx context.Context,
	p *models.Profile,
) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return uniqueOr(err, "profiles: update")
	}
	return nil
}

func uniqueOr(err error, op string) error {
	constraint, ok := httperr.UniqueConstraint(err)
	if !ok {
		return errors.Wrap(err, op)
	}
	if strings.Contains(constraint, "username") {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailTaken
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ProfileGormRepository) ListSellers(
	ctx context.Context,
	f domain.SellerFilter,
) ([]domain.SellerSummary, error) {

	q := r.db.WithContext(ctx).
		Table("profiles").
		Select(`profiles.*,
			(SELECT COUNT(*) FROM clients WHERE clients.seller_id = profiles.user_id) AS total_clients,
			(SELECT COALESCE(SUM(orders.amount), 0) FROM orders
				WHERE orders.seller_id = profiles.user_id AND orders.status = 'pago') AS total_sales`).
		Where("profiles.role = ?", string(domain.RoleVendedor))

	if term := strings.ToLower(strings.TrimSpace(f.Query)); term != "" {
		like := likePattern(term)
		q = q.Where(
			"profiles.display_name ILIKE ? OR profiles.email ILIKE ? OR profiles.username ILIKE ?",
			like, like, like,
		)
	}
	if f.Active != nil {
		q = q.Where("profiles.active = ?", *f.Active)
	}

	var rows []domain.SellerSummary
	if err := q.Order("profiles.display_name ASC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "profiles: list sellers")
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*ProfileGormRepository)(nil)
