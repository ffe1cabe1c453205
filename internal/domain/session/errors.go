package session

import (
	"errors"
	"net/http"
)

// LoginFailed es el mensaje cuando el backend rechaza sin "detail".
const LoginFailed = "login failed"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoSubject        = errors.New("session token has no subject")
)

// AuthenticationError es un login que no dejó token: rechazado por el backend
// o con una respuesta 2xx inutilizable (sin access_token, cuerpo inválido).
type AuthenticationError struct {
	Status int
	Detail string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return LoginFailed
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// HTTPStatus: un login rechazado es siempre 401 para el panel.
func (e *AuthenticationError) HTTPStatus() int { return http.StatusUnauthorized }
