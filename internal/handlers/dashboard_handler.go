package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	"github.com/BruksfildServices01/cesta-amigo/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *dashboard.GetDashboard
}

func NewDashboardHandler(stats *dashboard.GetDashboard) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	res, err := h.stats.Execute(c.Request.Context(), middleware.Actor(c), timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
