package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/dto"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/httpresp"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type ClientHandler struct {
	repo    client.Repository
	sellers profile.Finder
	audit   *audit.Dispatcher
}

func NewClientHandler(
	repo client.Repository,
	sellers profile.Finder,
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{repo: repo, sellers: sellers, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	DocumentNumber string `json:"document_number"`
	BirthDate      string `json:"birth_date"`
	Notes          string `json:"notes"`

	// só admin pode atribuir a outro vendedor
	SellerID *uuid.UUID `json:"seller_id"`
}

func (r ClientRequest) input() client.Input {
	return client.Input{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		PostalCode:     r.PostalCode,
		DocumentNumber: r.DocumentNumber,
		BirthDate:      r.BirthDate,
		Notes:          r.Notes,
	}
}

// bindClient separa JSON malformado (invalid_request) de formulário incompleto,
// que fica com a validação de client.Input.
func bindClient(c *gin.Context) (ClientRequest, bool) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Requisição inválida.")
		return req, false
	}
	return req, true
}

// sellerFor decide o dono do cliente. O vendedor escolhido por um admin é conferido.
func (h *ClientHandler) sellerFor(ctx context.Context, actor access.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	seller := access.SellerFor(actor, requested)
	if seller == actor.UserID {
		return seller, nil
	}
	if _, err := profile.ResolveSeller(ctx, h.sellers, seller); err != nil {
		return uuid.Nil, err
	}
	return seller, nil
}

func clientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return uuid.Nil, false
	}
	return id, true
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	req, ok := bindClient(c)
	if !ok {
		return
	}

	actor := middleware.Actor(c)

	var cl models.Client
	if err := req.input().Apply(&cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	seller, err := h.sellerFor(c.Request.Context(), actor, req.SellerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	cl.SellerID = &seller

	if err := h.repo.Create(c.Request.Context(), &cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.dispatch(actor, "client_created", cl.ID)
	c.JSON(http.StatusCreated, dto.NewClientDTO(cl))
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context(), middleware.Actor(c), client.Filter{
		Query: client.NormalizeQuery(c.Query("query")),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.NewClientDTOs(clients))
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	cl, err := h.repo.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClientDTO(*cl))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	req, ok := bindClient(c)
	if !ok {
		return
	}

	actor := middleware.Actor(c)

	cl, err := h.repo.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := req.input().Apply(cl); err != nil {
		httperr.Respond(c, err)
		return
	}
	if actor.IsAdmin() && req.SellerID != nil {
		seller, err := h.sellerFor(c.Request.Context(), actor, req.SellerID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		cl.SellerID = &seller
	}

	if err := h.repo.Update(c.Request.Context(), cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.dispatch(actor, "client_updated", cl.ID)
	c.JSON(http.StatusOK, dto.NewClientDTO(*cl))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	actor := middleware.Actor(c)
	if err := h.repo.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.dispatch(actor, "client_deleted", id)
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) dispatch(actor access.Actor, action string, id uuid.UUID) {
	h.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   action,
		Entity:   "client",
		EntityID: &id,
	})
}
