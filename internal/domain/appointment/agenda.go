package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

type Bucket string

const (
	BucketHoje   Bucket = "hoje"
	BucketAmanha Bucket = "amanha"
)

// BucketFor compara a data civil do compromisso com hoje e amanhã no fuso dado.
func BucketFor(date, now time.Time, loc *time.Location) (Bucket, bool) {
	if timezone.SameDay(date, now, loc) {
		return BucketHoje, true
	}

	today := timezone.StartOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	if timezone.SameDay(date, tomorrow, loc) {
		return BucketAmanha, true
	}

	return "", false
}

// Window devolve [hoje 00:00, depois de amanhã 00:00).
func Window(now time.Time, loc *time.Location) (time.Time, time.Time) {
	start := timezone.StartOfDay(now, loc)
	return start, start.AddDate(0, 0, 2)
}

type Split struct {
	Hoje   []models.Appointment
	Amanha []models.Appointment
}

// SplitAgenda separa os compromissos em Hoje/Amanhã, cada grupo em ordem de horário.
// O que não cai em nenhum dos dois dias é descartado.
func SplitAgenda(aps []models.Appointment, now time.Time, loc *time.Location) Split {
	out := Split{
		Hoje:   []models.Appointment{},
		Amanha: []models.Appointment{},
	}

	for _, ap := range aps {
		b, ok := BucketFor(ap.AppointmentDate, now, loc)
		if !ok {
			continue
		}
		if b == BucketHoje {
			out.Hoje = append(out.Hoje, ap)
		} else {
			out.Amanha = append(out.Amanha, ap)
		}
	}

	byTime := func(list []models.Appointment) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].AppointmentDate.Before(list[j].AppointmentDate)
		})
	}
	byTime(out.Hoje)
	byTime(out.Amanha)

	return out
}
