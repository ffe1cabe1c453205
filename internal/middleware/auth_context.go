package middleware

import (
	"context"
	"net/http"

	"eldercare-panel/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey        ctxKey = "claims"
	authenticatedKey ctxKey = "authenticated"
)

// SessionSource es lo que el middleware necesita de la sesión del panel.
type SessionSource interface {
	IsAuthenticated(ctx context.Context) bool
	Claims(ctx context.Context) (auth.Claims, error)
}

// SessionContext:
// - guarda en el contexto si hay sesión (presencia de token);
// - si los claims del token se pueden leer, también los guarda.
// No corta nada: el RouteGuard decide.
func SessionContext(src SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if src == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			authed := src.IsAuthenticated(ctx)
			ctx = context.WithValue(ctx, authenticatedKey, authed)

			if authed {
				if claims, err := src.Claims(ctx); err == nil {
					ctx = context.WithValue(ctx, claimsKey, claims)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAuthenticated lee lo que dejó SessionContext.
func IsAuthenticated(ctx context.Context) bool {
	v, _ := ctx.Value(authenticatedKey).(bool)
	return v
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
