package events

import (
	"strings"
	"time"

	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/dateutil"
)

const (
	MsgTitleRequired  = "title is required"
	MsgEndBeforeStart = "end cannot precede start"
	MsgInvalidStart   = "start is not a valid date"
	MsgInvalidEnd     = "end is not a valid date"
)

// Form es el formulario de evento. Las fechas llegan como datetime-local
// ("2024-07-01T10:00") o ISO completo.
type Form struct {
	Title           string    `json:"title"`
	EventType       EventType `json:"event_type"`
	StartDateTime   string    `json:"start_datetime"`
	EndDateTime     string    `json:"end_datetime"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	ElderlyPersonID string    `json:"elderly_person_id"`
}

// Payload es el cuerpo hacia el backend. Fechas en RFC 3339 UTC.
type Payload struct {
	Title           string    `json:"title"`
	EventType       EventType `json:"event_type,omitempty"`
	StartDateTime   string    `json:"start_datetime,omitempty"`
	EndDateTime     string    `json:"end_datetime,omitempty"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	ElderlyPersonID string    `json:"elderly_person_id,omitempty"`
}

// ValidateForm: título obligatorio; si están ambas fechas, fin >= inicio.
// Las fechas sin zona se leen en loc, igual que en Payload; nil usa la zona del panel.
// Una fecha que no se puede leer es un error de campo, no se saltea.
func ValidateForm(f Form, loc *time.Location) validation.Errors {
	var errs validation.Errors
	if loc == nil {
		loc = dateutil.Argentina
	}

	if strings.TrimSpace(f.Title) == "" {
		errs.Add("title", MsgTitleRequired)
	}

	start, startOK := parseOptional(f.StartDateTime, loc)
	end, endOK := parseOptional(f.EndDateTime, loc)
	if !startOK {
		errs.Add("start_datetime", MsgInvalidStart)
	}
	if !endOK {
		errs.Add("end_datetime", MsgInvalidEnd)
	}
	if start != nil && end != nil && end.Before(*start) {
		errs.Add("end_datetime", MsgEndBeforeStart)
	}
	return errs
}

// Payload convierte el formulario (ya validado) interpretando las fechas sin zona en loc.
func (f Form) Payload(loc *time.Location) Payload {
	if loc == nil {
		loc = dateutil.Argentina
	}
	p := Payload{
		Title:           strings.TrimSpace(f.Title),
		EventType:       EventType(strings.TrimSpace(string(f.EventType))),
		Location:        strings.TrimSpace(f.Location),
		Description:     strings.TrimSpace(f.Description),
		ElderlyPersonID: strings.TrimSpace(f.ElderlyPersonID),
	}
	if t, ok := parseOptional(f.StartDateTime, loc); ok && t != nil {
		p.StartDateTime = t.UTC().Format(time.RFC3339)
	}
	if t, ok := parseOptional(f.EndDateTime, loc); ok && t != nil {
		p.EndDateTime = t.UTC().Format(time.RFC3339)
	}
	return p
}

// FormFrom precarga el formulario de edición con fechas en loc.
func FormFrom(e Event, loc *time.Location) Form {
	return Form{
		Title:           e.Title,
		EventType:       e.EventType,
		StartDateTime:   dateutil.ToDateTimeLocal(e.StartDateTime, loc),
		EndDateTime:     dateutil.ToDateTimeLocal(e.EndDateTime, loc),
		Location:        e.Location,
		Description:     e.Description,
		ElderlyPersonID: e.ElderlyPersonID,
	}
}

// parseOptional: vacío => (nil, true); inválido => (nil, false).
func parseOptional(s string, loc *time.Location) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, ok := dateutil.ParseISO(s, loc)
	if !ok {
		return nil, false
	}
	return &t, true
}
