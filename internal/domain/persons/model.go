package persons

import (
	"strings"

	"eldercare-panel/internal/domain/resources"
)

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type MedicalCondition struct {
	Condition  string `json:"condition,omitempty"`
	Severity   string `json:"severity,omitempty"`
	Medication string `json:"medication,omitempty"`
}

type Medication struct {
	Name      string `json:"name,omitempty"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Time      string `json:"time,omitempty"`
}

// ElderlyPerson es el registro tal cual lo devuelve el backend.
// El id lo asigna el servidor; los campos que no están acá viajan en Extra.
type ElderlyPerson struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Age       *int   `json:"age,omitempty"`
	Address   string `json:"address,omitempty"`

	EmergencyContacts []EmergencyContact `json:"emergency_contacts,omitempty"`
	MedicalConditions []MedicalCondition `json:"medical_conditions,omitempty"`
	Medications       []Medication       `json:"medications,omitempty"`

	IsActive  *bool  `json:"is_active,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	Extra resources.Extra `json:"-"`
}

type personFields ElderlyPerson

func (p *ElderlyPerson) UnmarshalJSON(b []byte) error {
	extra, err := resources.DecodeRecord(b, (*personFields)(p))
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

func (p ElderlyPerson) MarshalJSON() ([]byte, error) {
	return resources.EncodeRecord(personFields(p), p.Extra)
}

func (p ElderlyPerson) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
