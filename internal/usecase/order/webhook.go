package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/payments"
)

// WebhookInput carrega o corpo da notificação e, no formato antigo (IPN),
// os parâmetros topic/id da query string.
type WebhookInput struct {
	Body  []byte
	Topic string
	ID    string
}

// PaymentWebhook trata as notificações do Mercado Pago. O corpo não é
// confiável: o pagamento é sempre consultado de volta no gateway.
type PaymentWebhook struct {
	repo    domain.Repository
	gateway payments.Gateway
	audit   *audit.Dispatcher
	log     zerolog.Logger
}

func NewPaymentWebhook(
	repo domain.Repository,
	gateway payments.Gateway,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *PaymentWebhook {
	if gateway == nil {
		gateway = payments.Disabled{}
	}
	return &PaymentWebhook{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
		log:     log,
	}
}

// PaymentID extrai o id do pagamento. Devolve "" para notificações de outros tipos.
func PaymentID(in WebhookInput) string {
	if len(in.Body) > 0 && gjson.ValidBytes(in.Body) {
		body := gjson.ParseBytes(in.Body)

		kind := body.Get("type").String()
		if kind == "" {
			kind = body.Get("topic").String()
		}
		if kind == "" {
			// {"action":"payment.updated", ...}
			kind, _, _ = strings.Cut(body.Get("action").String(), ".")
		}

		if kind == "payment" {
			if id := body.Get("data.id").String(); id != "" {
				return id
			}
		}
	}

	if in.Topic == "payment" {
		return in.ID
	}
	return ""
}

// Execute devolve true quando a venda foi marcada como paga.
func (uc *PaymentWebhook) Execute(ctx context.Context, in WebhookInput, now time.Time) (bool, error) {
	paymentID := PaymentID(in)
	if paymentID == "" {
		return false, nil
	}

	p, err := uc.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return false, err
	}

	if !p.Approved() {
		uc.log.Info().Str("payment_id", p.ID).Str("status", p.Status).Msg("payment not approved yet")
		return false, nil
	}

	orderID, err := uuid.Parse(p.ExternalReference)
	if err != nil {
		uc.log.Warn().Str("payment_id", p.ID).Str("external_reference", p.ExternalReference).
			Msg("payment without order reference")
		return false, nil
	}

	o, err := uc.repo.GetByID(ctx, orderID)
	if err != nil {
		return false, err
	}

	// notificações repetidas chegam com frequência
	if domain.Status(o.Status) == domain.StatusPago {
		return false, nil
	}

	if !p.Covers(o.Amount) {
		uc.log.Warn().
			Str("order_id", o.ID.String()).
			Str("payment_id", p.ID).
			Float64("order_amount", o.Amount).
			Float64("paid_amount", p.Amount).
			Str("currency", p.Currency).
			Msg("payment does not cover order")
		return false, nil
	}

	if err := domain.Apply(o, domain.StatusPago, now); err != nil {
		uc.log.Warn().Str("order_id", o.ID.String()).Str("status", o.Status).
			Msg("approved payment for closed order")
		return false, nil
	}

	ref := p.ID
	o.PaymentRef = &ref

	if err := uc.repo.Update(ctx, o); err != nil {
		return false, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "order_paid",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{"payment_id": p.ID},
	})

	return true, nil
}
