package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/httpresp"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	profileuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/profile"
)

// SellerHandler atende a tela Vendedores (somente admin).
type SellerHandler struct {
	profiles  profile.Repository
	setActive *profileuc.SetActive
}

func NewSellerHandler(profiles profile.Repository, setActive *profileuc.SetActive) *SellerHandler {
	return &SellerHandler{profiles: profiles, setActive: setActive}
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *SellerHandler) List(c *gin.Context) {
	f := profile.SellerFilter{Query: c.Query("query")}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Filtro active inválido.")
			return
		}
		f.Active = &active
	}

	sellers, err := h.profiles.ListSellers(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, sellers)
}

func (h *SellerHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "profile_not_found", "Usuário não encontrado.")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe active.")
		return
	}

	p, err := h.setActive.Execute(c.Request.Context(), middleware.Actor(c), id, *req.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
