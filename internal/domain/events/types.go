package events

type EventType string

// Tipos que ofrece el formulario del panel. El backend acepta otros.
const (
	EventTypeMedical    EventType = "medical"
	EventTypeMedication EventType = "medication"
	EventTypeVisit      EventType = "visit"
	EventTypeActivity   EventType = "activity"
	EventTypeOther      EventType = "other"
)

var KnownTypes = []EventType{
	EventTypeMedical,
	EventTypeMedication,
	EventTypeVisit,
	EventTypeActivity,
	EventTypeOther,
}
