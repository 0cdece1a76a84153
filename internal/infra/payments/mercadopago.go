// Package payments integra o checkout da cesta com o Mercado Pago.
package payments

import (
	"context"
	"math"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

var ErrUnavailable = httperr.ErrBusiness("payments_unavailable")

const (
	StatusApproved = "approved"
	CurrencyBRL    = "BRL"
)

type CheckoutRequest struct {
	OrderID      string
	Title        string
	Amount       float64
	Installments int
	// credit_card ou ticket
	Method string
	Email  string
}

type Checkout struct {
	PreferenceID string
	URL          string
}

type Payment struct {
	ID                string
	Status            string
	ExternalReference string
	Amount            float64
	Currency          string
}

func (p Payment) Approved() bool {
	return p.Status == StatusApproved
}

// Covers diz se o valor pago em reais quita amount. Comparação em centavos.
func (p Payment) Covers(amount float64) bool {
	return p.Currency == CurrencyBRL && cents(p.Amount) >= cents(amount)
}

func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
	GetPayment(ctx context.Context, paymentID string) (Payment, error)
}

// ===============================
// Mercado Pago
// ===============================

type MercadoPago struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "payments: config")
	}

	return &MercadoPago{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	res, err := m.preferences.Create(ctx, buildPreference(req, m.notificationURL))
	if err != nil {
		return Checkout{}, errors.Wrapf(err, "payments: create preference for order %s", req.OrderID)
	}

	return Checkout{PreferenceID: res.ID, URL: res.InitPoint}, nil
}

func (m *MercadoPago) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return Payment{}, errors.Wrapf(err, "payments: invalid payment id %q", paymentID)
	}

	res, err := m.payments.Get(ctx, id)
	if err != nil {
		return Payment{}, errors.Wrapf(err, "payments: get payment %d", id)
	}

	return Payment{
		ID:                strconv.Itoa(res.ID),
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
		Amount:            res.TransactionAmount,
		Currency:          res.CurrencyID,
	}, nil
}

// buildPreference limita o checkout ao meio do plano escolhido.
func buildPreference(req CheckoutRequest, notificationURL string) preference.Request {
	pr := preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.OrderID,
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Amount,
			CurrencyID: CurrencyBRL,
		}},
		ExternalReference: req.OrderID,
		NotificationURL:   notificationURL,
	}

	if req.Email != "" {
		pr.Payer = &preference.PayerRequest{Email: req.Email}
	}

	pm := &preference.PaymentMethodsRequest{}
	switch req.Method {
	case "credit_card":
		pm.Installments = req.Installments
		pm.DefaultInstallments = req.Installments
		pm.ExcludedPaymentTypes = []preference.ExcludedPaymentTypeRequest{{ID: "ticket"}}
	case "ticket":
		pm.ExcludedPaymentTypes = []preference.ExcludedPaymentTypeRequest{{ID: "credit_card"}, {ID: "debit_card"}}
	}
	pr.PaymentMethods = pm

	return pr
}

// Disabled é usado sem MP_ACCESS_TOKEN: o pedido é criado sem link de pagamento.
type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutRequest) (Checkout, error) {
	return Checkout{}, ErrUnavailable
}

func (Disabled) GetPayment(context.Context, string) (Payment, error) {
	return Payment{}, ErrUnavailable
}

var (
	_ Gateway = (*MercadoPago)(nil)
	_ Gateway = Disabled{}
)
