package backend

import (
	"errors"
	"fmt"
	"strings"

	"eldercare-panel/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenEmpty = errors.New("token is empty")

// ClaimsDecoder lee los claims del JWT del backend SIN verificar firma.
// El panel no tiene la clave; sirve sólo para mostrar quién está logueado.
type ClaimsDecoder struct {
	parser *jwt.Parser
}

func NewClaimsDecoder() *ClaimsDecoder {
	return &ClaimsDecoder{parser: jwt.NewParser()}
}

func (d *ClaimsDecoder) Decode(token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	mc := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mc); err != nil {
		return auth.Claims{}, fmt.Errorf("decode token claims: %w", err)
	}

	out := auth.Claims{}
	if sub, err := mc.GetSubject(); err == nil {
		out.Email = strings.TrimSpace(sub)
	}
	switch v := mc["user_id"].(type) {
	case string:
		out.UserID = strings.TrimSpace(v)
	case float64:
		out.UserID = fmt.Sprintf("%.0f", v)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, nil
}
