package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text es un campo de formulario que puede llegar como string o número
// (p.ej. edad "75" o 75). null queda vacío.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Trimmed devuelve el valor sin espacios alrededor.
func (t Text) Trimmed() string { return strings.TrimSpace(string(t)) }

// Blank indica vacío después de trim.
func (t Text) Blank() bool { return t.Trimmed() == "" }
