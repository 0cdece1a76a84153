package order

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/catalog"
	clientdomain "github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/payments"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckoutInput struct {
	ClientID    uuid.UUID
	PaymentPlan string
}

type CheckoutResult struct {
	Order  *models.Order  `json:"order"`
	Basket *models.Basket `json:"basket"`
	Plan   catalog.Plan   `json:"plan"`

	// vazio quando o plano não usa gateway ou o gateway falhou
	CheckoutURL string `json:"checkout_url"`
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	orders  domain.Repository
	clients clientdomain.Repository
	catalog *catalog.Catalog
	gateway payments.Gateway
	audit   *audit.Dispatcher
	log     zerolog.Logger
}

func NewCheckout(
	orders domain.Repository,
	clients clientdomain.Repository,
	cat *catalog.Catalog,
	gateway payments.Gateway,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *Checkout {
	if gateway == nil {
		gateway = payments.Disabled{}
	}
	return &Checkout{
		orders:  orders,
		clients: clients,
		catalog: cat,
		gateway: gateway,
		audit:   audit,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(
	ctx context.Context,
	actor access.Actor,
	in CheckoutInput,
) (*CheckoutResult, error) {

	// --------------------------------------------------
	// 1. Plano do catálogo
	// --------------------------------------------------
	plan, err := uc.catalog.Plan(strings.TrimSpace(in.PaymentPlan))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Cliente no escopo do vendedor
	// --------------------------------------------------
	client, err := uc.clients.Get(ctx, actor, in.ClientID)
	if err != nil {
		return nil, err
	}

	seller := actor.UserID
	if client.SellerID != nil {
		seller = *client.SellerID
	}

	// --------------------------------------------------
	// 3. Cesta + venda (transação)
	// --------------------------------------------------
	description := domain.BasketDescription(plan.Title)
	basket := &models.Basket{
		ClientID:    &client.ID,
		Description: &description,
	}

	o := &models.Order{
		SellerID:    &seller,
		Amount:      uc.catalog.Total(),
		Status:      string(domain.InitialStatus()),
		PaymentPlan: plan.ID,
	}

	if err := uc.orders.CreateCheckout(ctx, basket, o); err != nil {
		return nil, err
	}

	res := &CheckoutResult{Order: o, Basket: basket, Plan: plan}

	// --------------------------------------------------
	// 4. Link de pagamento (cartão / boleto)
	// --------------------------------------------------
	if plan.UsesGateway() {
		uc.attachCheckout(ctx, client, plan, res)
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]any{
			"client_id":    client.ID,
			"payment_plan": plan.ID,
			"amount":       o.Amount,
		},
	})

	return res, nil
}

// attachCheckout cria a preferência no gateway. Falha aqui não desfaz a venda:
// ela fica pendente e o vendedor cobra por fora.
func (uc *Checkout) attachCheckout(
	ctx context.Context,
	client *models.Client,
	plan catalog.Plan,
	res *CheckoutResult,
) {
	req := payments.CheckoutRequest{
		OrderID:      res.Order.ID.String(),
		Title:        *res.Basket.Description,
		Amount:       res.Order.Amount,
		Installments: plan.Installments,
		Method:       plan.Method,
	}
	if client.Email != nil {
		req.Email = *client.Email
	}

	co, err := uc.gateway.CreateCheckout(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).
			Str("order_id", req.OrderID).
			Str("payment_plan", plan.ID).
			Msg("checkout preference failed")
		return
	}

	res.Order.PaymentRef = &co.PreferenceID
	res.Order.CheckoutURL = &co.URL
	if err := uc.orders.Update(ctx, res.Order); err != nil {
		uc.log.Error().Err(err).Str("order_id", req.OrderID).Msg("saving checkout url failed")
	}
	res.CheckoutURL = co.URL
}
