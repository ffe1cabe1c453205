package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
)

// SubmitOnce rechaza con 409 un envío (POST/PUT/PATCH/DELETE) mientras otro
// al mismo path sigue en vuelo. Es el "botón deshabilitado" del panel,
// no una garantía de idempotencia del backend.
func SubmitOnce() func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		inFlight = map[string]struct{}{}
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				next.ServeHTTP(w, r)
				return
			}

			key := r.Method + " " + r.URL.Path

			mu.Lock()
			if _, busy := inFlight[key]; busy {
				mu.Unlock()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "submission already in progress"})
				return
			}
			inFlight[key] = struct{}{}
			mu.Unlock()

			defer func() {
				mu.Lock()
				delete(inFlight, key)
				mu.Unlock()
			}()

			next.ServeHTTP(w, r)
		})
	}
}
