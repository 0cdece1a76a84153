package order

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// Apply troca o status da venda. Ao marcar como paga grava PaidAt.
func Apply(o *models.Order, next Status, now time.Time) error {
	if err := CanTransition(Status(o.Status), next); err != nil {
		return err
	}

	o.Status = string(next)
	if next == StatusPago {
		o.PaidAt = &now
	}
	return nil
}

// IsOverdue diz se uma venda pendente passou do prazo.
func IsOverdue(o models.Order, now time.Time, days int) bool {
	if Status(o.Status) != StatusPendente {
		return false
	}
	return !o.CreatedAt.After(OverdueCutoff(now, days))
}

func OverdueCutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// RelativeLabel gera "Hoje", "Ontem" ou "N dias" contando dias de calendário no fuso dado.
func RelativeLabel(created, now time.Time, loc *time.Location) string {
	a := timezone.StartOfDay(created, loc)
	b := timezone.StartOfDay(now, loc)

	days := int(b.Sub(a).Hours()/24 + 0.5)
	switch {
	case days <= 0:
		return "Hoje"
	case days == 1:
		return "Ontem"
	default:
		return fmt.Sprintf("%d dias", days)
	}
}

func BasketDescription(planTitle string) string {
	return "Cesta Básica Completa - " + planTitle
}
