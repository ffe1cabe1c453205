// Package respond escribe las respuestas JSON del panel y traduce los errores
// del cliente (validación, login, backend, red) a HTTP.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/httpclient"
)

// ErrorBody es el cuerpo de todos los errores del panel.
type ErrorBody struct {
	Detail string                  `json:"detail"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// JSON escribe v con status. Si el request ya fue cancelado (el operador
// navegó a otra vista) el resultado se descarta y devuelve false.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) bool {
	if r != nil && r.Context().Err() != nil {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
	return true
}

// NoContent responde 204 salvo que el request ya no importe.
func NoContent(w http.ResponseWriter, r *http.Request) {
	if r.Context().Err() != nil {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Error mapea err a status + ErrorBody.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, body := Classify(err)
	JSON(w, r, status, body)
}

// Detail responde un error simple.
func Detail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorBody{Detail: msg})
}

// statusCoder lo implementan los errores que ya saben su status
// (p.ej. session.AuthenticationError).
type statusCoder interface {
	error
	HTTPStatus() int
}

// Classify decide status y cuerpo para err.
func Classify(err error) (int, ErrorBody) {
	var (
		valErr *validation.Error
		coded  statusCoder
		apiErr *httpclient.APIError
		netErr *httpclient.NetworkError
	)

	switch {
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, ErrorBody{Detail: valErr.Error(), Fields: valErr.Fields}
	case errors.As(err, &coded):
		return coded.HTTPStatus(), ErrorBody{Detail: coded.Error()}
	case errors.As(err, &apiErr):
		return apiErr.Status, ErrorBody{Detail: apiErr.Message()}
	case errors.As(err, &netErr):
		return http.StatusBadGateway, ErrorBody{Detail: "backend unreachable"}
	case errors.Is(err, resources.ErrMissingID):
		return http.StatusBadRequest, ErrorBody{Detail: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorBody{Detail: "internal error"}
	}
}

// Decode lee el cuerpo JSON de un formulario. Cuerpo vacío => v sin tocar.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
