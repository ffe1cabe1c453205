package alerts

import (
	"strings"

	"eldercare-panel/internal/domain/resources"
)

const SeverityCritical = "critical"

// Alert es de sólo lectura para el panel. Prioridad, escalamiento y demás
// campos que no se modelan viajan en Extra.
type Alert struct {
	ID              string `json:"id,omitempty"`
	AlertType       string `json:"alert_type,omitempty"`
	Severity        string `json:"severity,omitempty"`
	Title           string `json:"title,omitempty"`
	Message         string `json:"message,omitempty"`
	Status          string `json:"status,omitempty"`
	IsCritical      bool   `json:"is_critical,omitempty"`
	ElderlyPersonID string `json:"elderly_person_id,omitempty"`
	CaredPersonID   string `json:"cared_person_id,omitempty"`
	DeviceID        string `json:"device_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`

	Extra resources.Extra `json:"-"`
}

type alertFields Alert

func (a *Alert) UnmarshalJSON(b []byte) error {
	extra, err := resources.DecodeRecord(b, (*alertFields)(a))
	if err != nil {
		return err
	}
	a.Extra = extra
	return nil
}

func (a Alert) MarshalJSON() ([]byte, error) {
	return resources.EncodeRecord(alertFields(a), a.Extra)
}

// PersonID devuelve el adulto mayor asociado, con el nombre de campo que haya venido.
func (a Alert) PersonID() string {
	if a.ElderlyPersonID != "" {
		return a.ElderlyPersonID
	}
	return a.CaredPersonID
}

func (a Alert) Critical() bool {
	return a.IsCritical || strings.EqualFold(a.Severity, SeverityCritical)
}
