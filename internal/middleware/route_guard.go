package middleware

import (
	"net/http"

	"eldercare-panel/internal/routeguard"
)

// RouteGuard aplica routeguard.Decide a cada navegación.
// Requiere SessionContext antes en la cadena.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := routeguard.Decide(IsAuthenticated(r.Context()), r.URL.Path)
		if !d.Allow {
			http.Redirect(w, r, d.Redirect, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
