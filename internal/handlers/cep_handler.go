package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/cep"
)

// AddressLookup é satisfeito por cep.Client.
type AddressLookup interface {
	Lookup(ctx context.Context, raw string) (*cep.Address, error)
}

type CEPHandler struct {
	lookup AddressLookup
}

func NewCEPHandler(lookup AddressLookup) *CEPHandler {
	return &CEPHandler{lookup: lookup}
}

func (h *CEPHandler) Get(c *gin.Context) {
	addr, err := h.lookup.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, addr)
}
