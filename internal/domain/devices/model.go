package devices

import "fmt"

// Device se pasa tal cual: el panel no interpreta sus atributos,
// salvo id, dueño y estado para las vistas.
type Device map[string]any

func (d Device) ID() string { return d.str("id") }

func (d Device) ElderlyPersonID() string { return d.str("elderly_person_id") }

// Active lee is_active; si no viene, mira status.
func (d Device) Active() bool {
	if v, ok := d["is_active"].(bool); ok {
		return v
	}
	return d.str("status") == "active"
}

func (d Device) str(key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
