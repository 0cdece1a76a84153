package order

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

const DefaultRecentLimit = 5

type ListInput struct {
	Status string
	// YYYY-MM-DD, inclusivas
	From string
	To   string
}

type ListOrders struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo, loc: timezone.Default()}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	actor access.Actor,
	in ListInput,
	now time.Time,
) ([]dto.OrderDTO, error) {

	var f domain.Filter

	if s := strings.TrimSpace(in.Status); s != "" {
		st, err := domain.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}

	if in.From != "" {
		from, err := timezone.ParseDate(in.From)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		f.From = &from
	}

	if in.To != "" {
		to, err := timezone.ParseDate(in.To)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	if f.From != nil && f.To != nil && !f.To.After(*f.From) {
		return nil, httperr.ErrBusiness("invalid_period")
	}

	rows, err := uc.repo.List(ctx, actor, f)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTOs(rows, now, uc.loc), nil
}

// RecentOrders alimenta a lista "Transações recentes" do dashboard.
type RecentOrders struct {
	repo domain.Repository
	loc  *time.Location
}

func NewRecentOrders(repo domain.Repository) *RecentOrders {
	return &RecentOrders{repo: repo, loc: timezone.Default()}
}

func (uc *RecentOrders) Execute(
	ctx context.Context,
	actor access.Actor,
	limit int,
	now time.Time,
) ([]dto.OrderDTO, error) {

	if limit <= 0 || limit > 50 {
		limit = DefaultRecentLimit
	}

	rows, err := uc.repo.Recent(ctx, actor, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTOs(rows, now, uc.loc), nil
}
