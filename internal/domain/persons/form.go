package persons

import (
	"strconv"
	"strings"

	"eldercare-panel/internal/domain/validation"
)

const (
	MsgNameRequired = "first and last name are required"
	MsgAgeInvalid   = "age must be a whole number between 0 and 150"

	maxAge = 150
)

// Form es lo que completa el operador. La edad puede venir como texto ("75").
type Form struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Age       validation.Text `json:"age"`
	Address   string          `json:"address"`
}

// Payload es el cuerpo que se manda al backend.
type Payload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       *int   `json:"age,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ValidateForm corre antes de cualquier request. Nunca hace panic.
func ValidateForm(f Form) validation.Errors {
	var errs validation.Errors

	if strings.TrimSpace(f.FirstName) == "" || strings.TrimSpace(f.LastName) == "" {
		errs.Add("first_name", MsgNameRequired)
	}
	if !f.Age.Blank() {
		if _, ok := parseAge(f.Age.Trimmed()); !ok {
			errs.Add("age", MsgAgeInvalid)
		}
	}
	return errs
}

// Payload arma el cuerpo a enviar. Asume un Form ya validado.
func (f Form) Payload() Payload {
	p := Payload{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Address:   strings.TrimSpace(f.Address),
	}
	if age, ok := parseAge(f.Age.Trimmed()); ok {
		p.Age = &age
	}
	return p
}

// FormFrom precarga el formulario de edición.
func FormFrom(p ElderlyPerson) Form {
	f := Form{FirstName: p.FirstName, LastName: p.LastName, Address: p.Address}
	if p.Age != nil {
		f.Age = validation.Text(strconv.Itoa(*p.Age))
	}
	return f
}

func parseAge(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxAge {
		return 0, false
	}
	return n, true
}
