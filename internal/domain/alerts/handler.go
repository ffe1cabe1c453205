package alerts

import (
	"net/http"

	"eldercare-panel/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/alerts", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Get("/critical/{personID}", criticalHandler(svc))
		ar.Get("/{alertID}", getHandler(svc))
	})
}

// listHandler godoc
// @Summary     Lista alertas
// @Tags        alerts
// @Produce     json
// @Success     200 {array}  Alert
// @Failure     502 {object} respond.ErrorBody
// @Router      /alerts [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, items)
	}
}

// criticalHandler godoc
// @Summary     Alertas críticas de un adulto mayor
// @Tags        alerts
// @Produce     json
// @Param       personID path     string true "id del adulto mayor"
// @Success     200      {array}  Alert
// @Router      /alerts/critical/{personID} [get]
func criticalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetCriticalAlertsByElderlyPerson(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "alertID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, a)
	}
}
