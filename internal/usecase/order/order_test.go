package order

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/catalog"
	clientdomain "github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/order"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/payments"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

// ======================================================
// FAKES
// ======================================================

type memOrders struct {
	orders  map[uuid.UUID]*models.Order
	baskets map[uuid.UUID]*models.Basket
	names   map[uuid.UUID]string
	updates int
}

func newMemOrders() *memOrders {
	return &memOrders{
		orders:  map[uuid.UUID]*models.Order{},
		baskets: map[uuid.UUID]*models.Basket{},
		names:   map[uuid.UUID]string{},
	}
}

func (m *memOrders) CreateCheckout(_ context.Context, b *models.Basket, o *models.Order) error {
	b.ID = uuid.New()
	o.ID = uuid.New()
	o.BasketID = &b.ID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	m.baskets[b.ID] = b
	m.orders[o.ID] = o
	return nil
}

func (m *memOrders) Get(_ context.Context, actor access.Actor, id uuid.UUID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok || !actor.Owns(o.SellerID) {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) Update(_ context.Context, o *models.Order) error {
	m.updates++
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrders) rows(actor access.Actor) []domain.Row {
	var out []domain.Row
	for _, o := range m.orders {
		if !actor.Owns(o.SellerID) {
			continue
		}
		r := domain.Row{Order: *o}
		if o.BasketID != nil {
			if b, ok := m.baskets[*o.BasketID]; ok && b.ClientID != nil {
				r.ClientID = b.ClientID
				r.ClientName = m.names[*b.ClientID]
			}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memOrders) List(_ context.Context, actor access.Actor, f domain.Filter) ([]domain.Row, error) {
	var out []domain.Row
	for _, r := range m.rows(actor) {
		if f.Status != nil && r.Status != string(*f.Status) {
			continue
		}
		if f.From != nil && r.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !r.CreatedAt.Before(*f.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memOrders) Recent(_ context.Context, actor access.Actor, limit int) ([]domain.Row, error) {
	rows := m.rows(actor)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memOrders) MarkOverdue(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, o := range m.orders {
		if o.Status == string(domain.StatusPendente) && !o.CreatedAt.After(cutoff) {
			o.Status = string(domain.StatusAtrasado)
			n++
		}
	}
	return n, nil
}

type memClients struct {
	clients map[uuid.UUID]models.Client
}

func (m *memClients) Create(context.Context, *models.Client) error { return nil }
func (m *memClients) List(context.Context, access.Actor, clientdomain.Filter) ([]models.Client, error) {
	return nil, nil
}
func (m *memClients) Update(context.Context, *models.Client) error { return nil }
func (m *memClients) Delete(context.Context, access.Actor, uuid.UUID) error { return nil }
func (m *memClients) Get(_ context.Context, actor access.Actor, id uuid.UUID) (*models.Client, error) {
	c, ok := m.clients[id]
	if !ok || !actor.Owns(c.SellerID) {
		return nil, clientdomain.ErrNotFound
	}
	return &c, nil
}

type fakeGateway struct {
	requests []payments.CheckoutRequest
	fail     error
	payments map[string]payments.Payment
}

func (g *fakeGateway) CreateCheckout(_ context.Context, req payments.CheckoutRequest) (payments.Checkout, error) {
	g.requests = append(g.requests, req)
	if g.fail != nil {
		return payments.Checkout{}, g.fail
	}
	return payments.Checkout{PreferenceID: "pref-1", URL: "https://mp.test/checkout/pref-1"}, nil
}

func (g *fakeGateway) GetPayment(_ context.Context, id string) (payments.Payment, error) {
	p, ok := g.payments[id]
	if !ok {
		return payments.Payment{}, errors.New("payment not found")
	}
	return p, nil
}

var (
	sellerID = uuid.New()
	seller   = access.Actor{UserID: sellerID, Role: profile.RoleVendedor}
	intruder = access.Actor{UserID: uuid.New(), Role: profile.RoleVendedor}
	admin    = access.Actor{UserID: uuid.New(), Role: profile.RoleAdmin}
)

func fixture() (*memOrders, *memClients, models.Client) {
	email := "maria@example.com"
	c := models.Client{ID: uuid.New(), Name: "Maria Santos", Email: &email, SellerID: &sellerID}

	orders := newMemOrders()
	orders.names[c.ID] = c.Name

	return orders, &memClients{clients: map[uuid.UUID]models.Client{c.ID: c}}, c
}

// ======================================================
// CHECKOUT
// ======================================================

func TestCheckout_CardPlanCreatesPreference(t *testing.T) {
	orders, clients, client := fixture()
	gw := &fakeGateway{}
	uc := NewCheckout(orders, clients, catalog.Default(), gw, nil, zerolog.Nop())

	res, err := uc.Execute(context.Background(), seller, CheckoutInput{ClientID: client.ID, PaymentPlan: "cartao-3x"})
	require.NoError(t, err)

	assert.Equal(t, "Cesta Básica Completa - 3x no Cartão", *res.Basket.Description)
	assert.Equal(t, client.ID, *res.Basket.ClientID)
	assert.Equal(t, 700.0, res.Order.Amount)
	assert.Equal(t, "pendente", res.Order.Status)
	assert.Equal(t, "cartao-3x", res.Order.PaymentPlan)
	assert.Equal(t, sellerID, *res.Order.SellerID)
	assert.Equal(t, "https://mp.test/checkout/pref-1", res.CheckoutURL)

	require.Len(t, gw.requests, 1)
	assert.Equal(t, res.Order.ID.String(), gw.requests[0].OrderID)
	assert.Equal(t, 3, gw.requests[0].Installments)
	assert.Equal(t, "credit_card", gw.requests[0].Method)
	assert.Equal(t, "maria@example.com", gw.requests[0].Email)

	stored := orders.orders[res.Order.ID]
	assert.Equal(t, "pref-1", *stored.PaymentRef)
}

func TestCheckout_CashPlanSkipsGateway(t *testing.T) {
	orders, clients, client := fixture()
	gw := &fakeGateway{}
	uc := NewCheckout(orders, clients, catalog.Default(), gw, nil, zerolog.Nop())

	res, err := uc.Execute(context.Background(), seller, CheckoutInput{ClientID: client.ID, PaymentPlan: "avista"})
	require.NoError(t, err)

	assert.Empty(t, gw.requests)
	assert.Empty(t, res.CheckoutURL)
	assert.Nil(t, res.Order.CheckoutURL)
}

func TestCheckout_GatewayFailureKeepsOrderPending(t *testing.T) {
	orders, clients, client := fixture()
	gw := &fakeGateway{fail: errors.New("mp down")}
	uc := NewCheckout(orders, clients, catalog.Default(), gw, nil, zerolog.Nop())

	res, err := uc.Execute(context.Background(), seller, CheckoutInput{ClientID: client.ID, PaymentPlan: "boleto-2x"})
	require.NoError(t, err)

	assert.Empty(t, res.CheckoutURL)
	assert.Equal(t, "pendente", orders.orders[res.Order.ID].Status)
	assert.Zero(t, orders.updates)
}

func TestCheckout_Errors(t *testing.T) {
	orders, clients, client := fixture()
	uc := NewCheckout(orders, clients, catalog.Default(), nil, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, seller, CheckoutInput{ClientID: client.ID, PaymentPlan: "pix"})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_plan"))

	_, err = uc.Execute(ctx, intruder, CheckoutInput{ClientID: client.ID, PaymentPlan: "avista"})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	assert.Empty(t, orders.orders)
}

func TestCheckout_AdminSellsForClientOwner(t *testing.T) {
	orders, clients, client := fixture()
	uc := NewCheckout(orders, clients, catalog.Default(), nil, nil, zerolog.Nop())

	res, err := uc.Execute(context.Background(), admin, CheckoutInput{ClientID: client.ID, PaymentPlan: "avista"})
	require.NoError(t, err)
	assert.Equal(t, sellerID, *res.Order.SellerID)
}

// ======================================================
// STATUS
// ======================================================

func seedOrder(m *memOrders, status domain.Status, created time.Time) *models.Order {
	o := &models.Order{
		ID:        uuid.New(),
		SellerID:  &sellerID,
		Amount:    700,
		Status:    string(status),
		CreatedAt: created,
	}
	m.orders[o.ID] = o
	return o
}

func TestUpdateStatus(t *testing.T) {
	orders := newMemOrders()
	now := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)
	o := seedOrder(orders, domain.StatusPendente, now.AddDate(0, 0, -1))

	uc := NewUpdateStatus(orders, nil)

	updated, err := uc.Execute(context.Background(), seller, o.ID, "pago", now)
	require.NoError(t, err)
	assert.Equal(t, "pago", updated.Status)
	require.NotNil(t, orders.orders[o.ID].PaidAt)

	_, err = uc.Execute(context.Background(), seller, o.ID, "cancelado", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))

	_, err = uc.Execute(context.Background(), seller, o.ID, "paid", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), intruder, o.ID, "cancelado", now)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

// ======================================================
// WEBHOOK
// ======================================================

func TestPaymentID(t *testing.T) {
	assert.Equal(t, "123", PaymentID(WebhookInput{Body: []byte(`{"type":"payment","data":{"id":"123"}}`)}))
	assert.Equal(t, "456", PaymentID(WebhookInput{Body: []byte(`{"action":"payment.updated","data":{"id":456}}`)}))
	assert.Equal(t, "789", PaymentID(WebhookInput{Topic: "payment", ID: "789"}))
	assert.Empty(t, PaymentID(WebhookInput{Body: []byte(`{"type":"merchant_order","data":{"id":"1"}}`)}))
	assert.Empty(t, PaymentID(WebhookInput{Body: []byte(`not json`)}))
}

func TestPaymentWebhook_MarksOrderPaid(t *testing.T) {
	orders := newMemOrders()
	now := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)
	o := seedOrder(orders, domain.StatusAtrasado, now.AddDate(0, 0, -40))

	gw := &fakeGateway{payments: map[string]payments.Payment{
		"99":  {ID: "99", Status: "approved", ExternalReference: o.ID.String(), Amount: 700, Currency: "BRL"},
		"100": {ID: "100", Status: "pending", ExternalReference: o.ID.String(), Amount: 700, Currency: "BRL"},
	}}
	uc := NewPaymentWebhook(orders, gw, nil, zerolog.Nop())
	ctx := context.Background()

	paid, err := uc.Execute(ctx, WebhookInput{Body: []byte(`{"type":"payment","data":{"id":"100"}}`)}, now)
	require.NoError(t, err)
	assert.False(t, paid)
	assert.Equal(t, "atrasado", orders.orders[o.ID].Status)

	paid, err = uc.Execute(ctx, WebhookInput{Body: []byte(`{"type":"payment","data":{"id":"99"}}`)}, now)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, "pago", orders.orders[o.ID].Status)
	assert.Equal(t, "99", *orders.orders[o.ID].PaymentRef)

	// repetida
	paid, err = uc.Execute(ctx, WebhookInput{Body: []byte(`{"type":"payment","data":{"id":"99"}}`)}, now)
	require.NoError(t, err)
	assert.False(t, paid)
	assert.Equal(t, 1, orders.updates)
}

func TestPaymentWebhook_RejectsUnderpayment(t *testing.T) {
	orders := newMemOrders()
	now := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)
	o := seedOrder(orders, domain.StatusPendente, now.AddDate(0, 0, -1))

	gw := &fakeGateway{payments: map[string]payments.Payment{
		"1": {ID: "1", Status: "approved", ExternalReference: o.ID.String(), Amount: 1, Currency: "BRL"},
		"2": {ID: "2", Status: "approved", ExternalReference: o.ID.String(), Amount: 700, Currency: "USD"},
		"3": {ID: "3", Status: "approved", ExternalReference: o.ID.String()},
	}}
	uc := NewPaymentWebhook(orders, gw, nil, zerolog.Nop())

	for id := range gw.payments {
		paid, err := uc.Execute(context.Background(), WebhookInput{Topic: "payment", ID: id}, now)
		require.NoError(t, err, id)
		assert.False(t, paid, id)
	}

	assert.Equal(t, "pendente", orders.orders[o.ID].Status)
	assert.Nil(t, orders.orders[o.ID].PaymentRef)
	assert.Zero(t, orders.updates)
}

func TestPaymentWebhook_IgnoresOtherTopics(t *testing.T) {
	uc := NewPaymentWebhook(newMemOrders(), &fakeGateway{}, nil, zerolog.Nop())

	paid, err := uc.Execute(context.Background(), WebhookInput{Topic: "merchant_order", ID: "1"}, time.Now())
	require.NoError(t, err)
	assert.False(t, paid)
}

// ======================================================
// SWEEP / LIST
// ======================================================

func TestSweepOverdue(t *testing.T) {
	orders := newMemOrders()
	now := time.Date(2024, 12, 31, 3, 0, 0, 0, time.UTC)

	old := seedOrder(orders, domain.StatusPendente, now.AddDate(0, 0, -31))
	fresh := seedOrder(orders, domain.StatusPendente, now.AddDate(0, 0, -2))
	paid := seedOrder(orders, domain.StatusPago, now.AddDate(0, 0, -90))

	n, err := NewSweepOverdue(orders, 30, nil, zerolog.Nop()).Execute(context.Background(), now)
	require.NoError(t, err)

	assert.EqualValues(t, 1, n)
	assert.Equal(t, "atrasado", orders.orders[old.ID].Status)
	assert.Equal(t, "pendente", orders.orders[fresh.ID].Status)
	assert.Equal(t, "pago", orders.orders[paid.ID].Status)
}

func TestListAndRecent(t *testing.T) {
	orders, clients, client := fixture()
	checkout := NewCheckout(orders, clients, catalog.Default(), nil, nil, zerolog.Nop())

	for _, plan := range []string{"avista", "boleto-2x"} {
		_, err := checkout.Execute(context.Background(), seller, CheckoutInput{ClientID: client.ID, PaymentPlan: plan})
		require.NoError(t, err)
	}

	now := timezone.Now()

	all, err := NewListOrders(orders).Execute(context.Background(), seller, ListInput{}, now)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Maria Santos", all[0].ClientName)
	assert.Equal(t, "Hoje", all[0].When)
	assert.Equal(t, "R$ 700,00", all[0].AmountLabel)

	paid, err := NewListOrders(orders).Execute(context.Background(), seller, ListInput{Status: "pago"}, now)
	require.NoError(t, err)
	assert.Empty(t, paid)

	_, err = NewListOrders(orders).Execute(context.Background(), seller, ListInput{Status: "x"}, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = NewListOrders(orders).Execute(context.Background(), seller, ListInput{From: "2024-12-31", To: "2024-12-01"}, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_period"))

	recent, err := NewRecentOrders(orders).Execute(context.Background(), seller, 1, now)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	none, err := NewRecentOrders(orders).Execute(context.Background(), intruder, 5, now)
	require.NoError(t, err)
	assert.Empty(t, none)
}
