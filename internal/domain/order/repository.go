package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("order_not_found")

type Filter struct {
	Status *Status
	From   *time.Time
	To     *time.Time
}

// Row é a venda com o nome do cliente, usada na listagem e nos recentes.
type Row struct {
	models.Order
	ClientID   *uuid.UUID `json:"client_id"`
	ClientName string     `json:"client_name"`
}

type Repository interface {
	// Cria cesta e venda na mesma transação.
	CreateCheckout(
		ctx context.Context,
		basket *models.Basket,
		o *models.Order,
	) error

	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Order, error)

	// GetByID ignora escopo; usado pelo webhook de pagamento.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	Update(ctx context.Context, o *models.Order) error

	List(ctx context.Context, actor access.Actor, f Filter) ([]Row, error)

	Recent(ctx context.Context, actor access.Actor, limit int) ([]Row, error)

	// MarkOverdue muda pendente -> atrasado para vendas criadas até cutoff.
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}
