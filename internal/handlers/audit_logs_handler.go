package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/httpresp"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditLogQuery struct {
	Action  string `form:"action"`
	Entity  string `form:"entity"`
	ActorID string `form:"actor_id"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

type auditLogMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
}

// scope converte os filtros em condições gorm. `to` é inclusivo.
func (q *auditLogQuery) scope() (func(*gorm.DB) *gorm.DB, error) {
	var (
		actor    *uuid.UUID
		from, to time.Time
	)

	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		actor = &id
	}

	if q.From != "" {
		d, err := timezone.ParseDate(q.From)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		from = d
	}

	if q.To != "" {
		d, err := timezone.ParseDate(q.To)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		to = d.AddDate(0, 0, 1)
	}

	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, httperr.ErrBusiness("invalid_period")
	}

	return func(db *gorm.DB) *gorm.DB {
		if q.Action != "" {
			db = db.Where("action = ?", q.Action)
		}
		if q.Entity != "" {
			db = db.Where("entity = ?", q.Entity)
		}
		if actor != nil {
			db = db.Where("actor_id = ?", *actor)
		}
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("created_at < ?", to)
		}
		return db
	}, nil
}

// List pagina os eventos de auditoria, mais recentes primeiro. Rota restrita a admin.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var q auditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetros inválidos.")
		return
	}

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > auditMaxLimit {
		q.Limit = auditDefaultLimit
	}

	filters, err := q.scope()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	base := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Scopes(filters)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {

		_ = c.Error(err)
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.ListWithMeta(c, logs, auditLogMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		TotalCount: total,
	})
}
