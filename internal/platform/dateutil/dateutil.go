// Package dateutil convierte fechas entre el formato del backend (ISO 8601),
// el de los inputs datetime-local y el de pantalla (dd/mm/yyyy HH:MM).
package dateutil

import (
	"strings"
	"time"
)

// DateTimeLocalLayout es el formato de <input type="datetime-local">.
const DateTimeLocalLayout = "2006-01-02T15:04"

// Argentina no tiene horario de verano desde 2009; alcanza con un offset fijo.
var Argentina = time.FixedZone("ART", -3*60*60)

// Parts es una fecha lista para mostrar.
type Parts struct {
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	DateTimeLocalLayout,
}

// ParseISO acepta lo que devuelve el backend, con o sin zona.
// Sin zona se interpreta en loc.
func ParseISO(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToDateTimeLocal convierte un ISO del backend al valor de un input datetime-local en loc.
// Vacío o inválido => "".
func ToDateTimeLocal(iso string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t, ok := ParseISO(iso, loc)
	if !ok {
		return ""
	}
	return t.In(loc).Format(DateTimeLocalLayout)
}

// FromDateTimeLocal interpreta el valor de un input datetime-local en loc.
// Vacío => nil, sin error.
func FromDateTimeLocal(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateTimeLocalLayout, value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DisplayParts separa fecha y hora en formato argentino, en loc.
func DisplayParts(iso string, loc *time.Location) (Parts, bool) {
	if loc == nil {
		loc = time.UTC
	}
	t, ok := ParseISO(iso, loc)
	if !ok {
		return Parts{}, false
	}
	t = t.In(loc)
	return Parts{
		Fecha: t.Format("02/01/2006"),
		Hora:  t.Format("15:04"),
	}, true
}
