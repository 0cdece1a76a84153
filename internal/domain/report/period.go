package report

import (
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

type Period string

const (
	PeriodSemana    Period = "semana"
	PeriodMes       Period = "mes"
	PeriodTrimestre Period = "trimestre"
	PeriodAno       Period = "ano"
)

// ParsePeriod aceita vazio como "mes", o padrão da tela de relatórios.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodMes, nil
	case PeriodSemana, PeriodMes, PeriodTrimestre, PeriodAno:
		return p, nil
	default:
		return "", httperr.ErrBusiness("invalid_period")
	}
}

func (p Period) Label() string {
	switch p {
	case PeriodSemana:
		return "Esta Semana"
	case PeriodTrimestre:
		return "Este Trimestre"
	case PeriodAno:
		return "Este Ano"
	default:
		return "Este Mês"
	}
}

// Window vai do início do período (segunda-feira, dia 1, início do trimestre ou 1º de janeiro)
// até now.
func (p Period) Window(now time.Time, loc *time.Location) (time.Time, time.Time) {
	today := timezone.StartOfDay(now, loc)

	var start time.Time
	switch p {
	case PeriodSemana:
		// segunda = 0
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
	case PeriodTrimestre:
		q := (int(today.Month()) - 1) / 3
		start = time.Date(today.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
	case PeriodAno:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	}

	return start, now.In(loc)
}

// Previous é a janela imediatamente anterior, com a mesma duração.
func Previous(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-end.Sub(start)), start
}
