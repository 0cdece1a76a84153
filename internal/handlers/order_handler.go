package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/httpresp"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	orderuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

type OrderHandler struct {
	checkout     *orderuc.Checkout
	list         *orderuc.ListOrders
	recent       *orderuc.RecentOrders
	updateStatus *orderuc.UpdateStatus
}

func NewOrderHandler(
	checkout *orderuc.Checkout,
	list *orderuc.ListOrders,
	recent *orderuc.RecentOrders,
	updateStatus *orderuc.UpdateStatus,
) *OrderHandler {
	return &OrderHandler{
		checkout:     checkout,
		list:         list,
		recent:       recent,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckoutRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	PaymentPlan string    `json:"payment_plan" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Selecione o cliente e a forma de pagamento.")
		return
	}

	res, err := h.checkout.Execute(c.Request.Context(), middleware.Actor(c), orderuc.CheckoutInput{
		ClientID:    req.ClientID,
		PaymentPlan: req.PaymentPlan,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *OrderHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), orderuc.ListInput{
		Status: c.Query("status"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}, timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *OrderHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(orderuc.DefaultRecentLimit)))

	rows, err := h.recent.Execute(c.Request.Context(), middleware.Actor(c), limit, timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	o, err := h.updateStatus.Execute(c.Request.Context(), middleware.Actor(c), id, req.Status, timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}
