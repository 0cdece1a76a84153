package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	reportuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/report"
)

type ReportHandler struct {
	build  *reportuc.BuildReport
	export *reportuc.ExportReport
}

func NewReportHandler(build *reportuc.BuildReport, export *reportuc.ExportReport) *ReportHandler {
	return &ReportHandler{build: build, export: export}
}

// Get: ?period=semana|mes|trimestre|ano (padrão mes).
func (h *ReportHandler) Get(c *gin.Context) {
	rep, err := h.build.Execute(c.Request.Context(), middleware.Actor(c), c.Query("period"), timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

// Export devolve o link assinado quando há bucket; senão, o próprio CSV.
func (h *ReportHandler) Export(c *gin.Context) {
	res, err := h.export.Execute(c.Request.Context(), middleware.Actor(c), c.Query("period"), timezone.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if res.URL != "" {
		c.JSON(http.StatusOK, gin.H{"url": res.URL, "filename": res.Filename})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, reportuc.CSVContentType, res.Content)
}
