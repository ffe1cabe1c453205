package dashboard

import (
	"net/http"

	"eldercare-panel/internal/middleware"
	"eldercare-panel/internal/platform/respond"
	"eldercare-panel/internal/routeguard"

	"github.com/go-chi/chi/v5"
)

type landing struct {
	App           string   `json:"app"`
	Authenticated bool     `json:"authenticated"`
	Links         []string `json:"links"`
}

type home struct {
	landing
	User    string  `json:"user,omitempty"`
	Summary Summary `json:"summary"`
}

// RegisterRoutes monta "/". La raíz es pública: sin sesión muestra la portada.
func RegisterRoutes(r chi.Router, svc *Service, app string) {
	r.Get(routeguard.RootPath, homeHandler(svc, app))
}

// homeHandler godoc
// @Summary     Inicio del panel (portada o resumen)
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} home
// @Router      / [get]
func homeHandler(svc *Service, app string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsAuthenticated(r.Context()) {
			respond.JSON(w, r, http.StatusOK, landing{
				App:   app,
				Links: []string{routeguard.LoginPath, routeguard.RegisterPath},
			})
			return
		}

		sum, err := svc.Summary(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := home{
			landing: landing{
				App:           app,
				Authenticated: true,
				Links:         []string{"/elderly-persons", "/events", "/devices", "/alerts"},
			},
			Summary: sum,
		}
		if c, ok := middleware.GetClaims(r.Context()); ok {
			out.User = c.Email
		}
		respond.JSON(w, r, http.StatusOK, out)
	}
}
