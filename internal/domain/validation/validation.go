// Package validation modela errores de formulario que se muestran inline.
package validation

import "strings"

// FieldError es un mensaje asociado a un campo del formulario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors es la lista que devuelven los validadores. Vacía = válido.
type Errors []FieldError

// Add agrega un error de campo.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e Errors) Valid() bool { return len(e) == 0 }

// Messages devuelve sólo los textos, en orden.
func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Message)
	}
	return out
}

// For devuelve los mensajes de un campo.
func (e Errors) For(field string) []string {
	var out []string
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Err convierte la lista en *Error, o nil si no hay errores.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &Error{Fields: e}
}

// Error es la falla local previa al envío; nunca llega al backend.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Messages(), "; ")
}
