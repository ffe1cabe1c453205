package resources

import "encoding/json"

// Extra guarda los campos del backend que el tipo no modela, para
// devolverlos tal cual al serializar.
type Extra map[string]json.RawMessage

// DecodeRecord decodifica b en known (puntero a un tipo sin métodos JSON)
// y devuelve los campos de b que known no vuelve a emitir.
// Los campos de known tienen que ser omitempty para que el eco sea exacto.
func DecodeRecord(b []byte, known any) (Extra, error) {
	if err := json.Unmarshal(b, known); err != nil {
		return nil, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	emitted, err := fieldsOf(known)
	if err != nil {
		return nil, err
	}
	for k := range emitted {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return Extra(all), nil
}

// EncodeRecord serializa known y agrega extra sin pisar campos conocidos.
func EncodeRecord(known any, extra Extra) ([]byte, error) {
	if len(extra) == 0 {
		return json.Marshal(known)
	}
	out, err := fieldsOf(known)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]json.RawMessage{}
	}
	for k, v := range extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

func fieldsOf(v any) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
