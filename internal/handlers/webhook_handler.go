package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	orderuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

const maxWebhookBytes = 64 << 10

// WebhookHandler recebe as notificações do Mercado Pago (rota pública).
type WebhookHandler struct {
	payments *orderuc.PaymentWebhook
}

func NewWebhookHandler(payments *orderuc.PaymentWebhook) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// MercadoPago responde 200 para o que foi tratado ou ignorado.
// Erros de consulta devolvem 5xx para o gateway reenviar.
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Notificação inválida.")
		return
	}

	paid, err := h.payments.Execute(c.Request.Context(), orderuc.WebhookInput{
		Body:  body,
		Topic: c.Query("topic"),
		ID:    c.Query("id"),
	}, timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "paid": paid})
}
