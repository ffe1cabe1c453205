package events

import (
	"encoding/json"
	"time"

	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/platform/dateutil"
)

// Event es el registro del backend. Las fechas quedan como las manda el
// servidor (ISO 8601); la vista las formatea. Lo que no se modela viaja en Extra.
type Event struct {
	ID              string    `json:"id,omitempty"`
	Title           string    `json:"title,omitempty"`
	EventType       EventType `json:"event_type,omitempty"`
	StartDateTime   string    `json:"start_datetime,omitempty"`
	EndDateTime     string    `json:"end_datetime,omitempty"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	ElderlyPersonID string    `json:"elderly_person_id,omitempty"`
	CreatedAt       string    `json:"created_at,omitempty"`

	Extra resources.Extra `json:"-"`
}

type eventFields Event

func (e *Event) UnmarshalJSON(b []byte) error {
	extra, err := resources.DecodeRecord(b, (*eventFields)(e))
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	return resources.EncodeRecord(eventFields(e), e.Extra)
}

// View agrega fecha y hora para mostrar en la zona del panel.
type View struct {
	Event
	Start *dateutil.Parts `json:"start,omitempty"`
	End   *dateutil.Parts `json:"end,omitempty"`
}

func NewView(e Event, loc *time.Location) View {
	v := View{Event: e}
	if p, ok := dateutil.DisplayParts(e.StartDateTime, loc); ok {
		v.Start = &p
	}
	if p, ok := dateutil.DisplayParts(e.EndDateTime, loc); ok {
		v.End = &p
	}
	return v
}

// MarshalJSON emite el evento completo más start/end.
func (v View) MarshalJSON() ([]byte, error) {
	extra := make(resources.Extra, len(v.Event.Extra)+2)
	for k, val := range v.Event.Extra {
		extra[k] = val
	}
	for k, p := range map[string]*dateutil.Parts{"start": v.Start, "end": v.End} {
		if p == nil {
			continue
		}
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		extra[k] = b
	}
	return resources.EncodeRecord(eventFields(v.Event), extra)
}
