package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	ordersuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

// Counter faz as contagens dos cards. Cada método roda numa goroutine própria.
type Counter interface {
	CountBaskets(ctx context.Context, actor access.Actor) (int64, error)
	CountActiveClients(ctx context.Context, actor access.Actor) (int64, error)
	CountSellers(ctx context.Context, actor access.Actor) (int64, error)
	CountPending(ctx context.Context, actor access.Actor) (int64, error)
}

type Stats struct {
	TotalBaskets  int64 `json:"total_baskets"`
	ActiveClients int64 `json:"active_clients"`
	Sellers       int64 `json:"sellers"`
	PendingItems  int64 `json:"pending_items"`
}

type Result struct {
	Stats        Stats          `json:"stats"`
	RecentOrders []dto.OrderDTO `json:"recent_orders"`
}

type GetDashboard struct {
	counter Counter
	recent  *ordersuc.RecentOrders
}

func NewGetDashboard(counter Counter, recent *ordersuc.RecentOrders) *GetDashboard {
	return &GetDashboard{counter: counter, recent: recent}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	actor access.Actor,
	now time.Time,
) (*Result, error) {

	var res Result
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context, access.Actor) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx, actor)
			*dst = n
			return err
		})
	}

	count(&res.Stats.TotalBaskets, uc.counter.CountBaskets)
	count(&res.Stats.ActiveClients, uc.counter.CountActiveClients)
	count(&res.Stats.Sellers, uc.counter.CountSellers)
	count(&res.Stats.PendingItems, uc.counter.CountPending)

	g.Go(func() error {
		rows, err := uc.recent.Execute(gctx, actor, ordersuc.DefaultRecentLimit, now)
		res.RecentOrders = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
