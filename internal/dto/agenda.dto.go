package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/appointment"
	"github.com/BruksfildServices01/cesta-amigo/internal/format"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type AgendaEntryDTO struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        *uuid.UUID `json:"client_id"`
	ClientName      string     `json:"client_name"`
	AppointmentDate time.Time  `json:"appointment_date"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Type            string     `json:"type"`
	Address         string     `json:"address"`
	Observations    string     `json:"observations"`
}

type AgendaDayDTO struct {
	Label string           `json:"label"`
	Date  string           `json:"date"`
	Count int              `json:"count"`
	Items []AgendaEntryDTO `json:"items"`
}

type AgendaDTO struct {
	Hoje   AgendaDayDTO `json:"hoje"`
	Amanha AgendaDayDTO `json:"amanha"`
}

func NewAgendaEntry(ap models.Appointment, loc *time.Location) AgendaEntryDTO {
	local := ap.AppointmentDate.In(loc)

	var notes string
	if ap.Notes != nil {
		notes = *ap.Notes
	}
	parts := domain.ParseNotes(notes)

	out := AgendaEntryDTO{
		ID:              ap.ID,
		ClientID:        ap.ClientID,
		AppointmentDate: ap.AppointmentDate,
		Date:            local.Format("2006-01-02"),
		Time:            local.Format("15:04"),
		Type:            parts.Type,
		Address:         parts.Address,
		Observations:    parts.Observations,
	}
	if ap.Client != nil {
		out.ClientName = ap.Client.Name
	}
	return out
}

func NewAgendaDay(label string, day time.Time, aps []models.Appointment, loc *time.Location) AgendaDayDTO {
	items := make([]AgendaEntryDTO, 0, len(aps))
	for _, ap := range aps {
		items = append(items, NewAgendaEntry(ap, loc))
	}
	return AgendaDayDTO{
		Label: label,
		Date:  day.In(loc).Format("2006-01-02"),
		Count: len(items),
		Items: items,
	}
}

// LabelHoje: "Hoje - quinta-feira, 26 de dezembro de 2024".
func LabelHoje(day time.Time) string {
	return "Hoje - " + format.DateLong(day)
}

// LabelAmanha: "Amanhã - sexta-feira, 27 de dezembro".
func LabelAmanha(day time.Time) string {
	return "Amanhã - " + format.DateLongNoYear(day)
}
