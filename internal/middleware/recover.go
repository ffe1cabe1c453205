package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"eldercare-panel/internal/platform/logger"
)

// Recover convierte un panic en 500 JSON y lo registra con el logger del panel.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic", map[string]any{
					"path":  r.URL.Path,
					"panic": rec,
					"stack": string(debug.Stack()),
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "internal error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
