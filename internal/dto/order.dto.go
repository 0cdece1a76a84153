package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/format"
)

// OrderDTO é a linha de venda do dashboard e da listagem de pedidos.
type OrderDTO struct {
	ID          uuid.UUID  `json:"id"`
	ClientID    *uuid.UUID `json:"client_id"`
	ClientName  string     `json:"client_name"`
	Amount      float64    `json:"amount"`
	AmountLabel string     `json:"amount_label"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	PaymentPlan string     `json:"payment_plan"`
	CheckoutURL *string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	When        string     `json:"when"`
}

func NewOrderDTO(r order.Row, now time.Time, loc *time.Location) OrderDTO {
	return OrderDTO{
		ID:          r.ID,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		Amount:      r.Amount,
		AmountLabel: format.BRLFloat(r.Amount),
		Status:      r.Status,
		StatusLabel: order.Status(r.Status).Label(),
		PaymentPlan: r.PaymentPlan,
		CheckoutURL: r.CheckoutURL,
		CreatedAt:   r.CreatedAt,
		When:        order.RelativeLabel(r.CreatedAt, now, loc),
	}
}

func NewOrderDTOs(rows []order.Row, now time.Time, loc *time.Location) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewOrderDTO(r, now, loc))
	}
	return out
}
