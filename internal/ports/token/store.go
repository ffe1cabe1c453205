package token

import (
	"context"
	"errors"
)

// DefaultKey es el nombre fijo bajo el que se guarda el token.
const DefaultKey = "token"

// ErrEmptyToken se devuelve al intentar guardar un token vacío.
var ErrEmptyToken = errors.New("token is empty")

// Store persiste el único token de sesión del proceso.
// Get devuelve ok=false cuando no hay token. Clear es idempotente.
type Store interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Close() error
}
