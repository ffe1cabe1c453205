package devices

import (
	"net/http"

	"eldercare-panel/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/devices", func(dr chi.Router) {
		dr.Get("/", listHandler(svc))
		dr.Post("/", createHandler(svc))

		dr.Get("/{deviceID}", getHandler(svc))
		dr.Put("/{deviceID}", updateHandler(svc))
		dr.Delete("/{deviceID}", deleteHandler(svc))
		dr.Post("/{deviceID}/activate", setActiveHandler(svc, true))
		dr.Post("/{deviceID}/deactivate", setActiveHandler(svc, false))

		// Dispositivos de un adulto mayor
		dr.Get("/elderly/{personID}", listByPersonHandler(svc))
	})
}

// listHandler godoc
// @Summary     Lista dispositivos
// @Tags        devices
// @Produce     json
// @Success     200 {array}  object
// @Failure     502 {object} respond.ErrorBody
// @Router      /devices [get]
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

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Device
		if err := respond.Decode(r, &in); err != nil || in == nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, d)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(r.Context(), chi.URLParam(r, "deviceID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, d)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Device
		if err := respond.Decode(r, &in); err != nil || in == nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "deviceID"), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, d)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "deviceID")); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.NoContent(w, r)
	}
}

// setActiveHandler godoc
// @Summary     Activa o desactiva un dispositivo
// @Tags        devices
// @Produce     json
// @Param       deviceID path     string true "id"
// @Success     200      {object} object
// @Router      /devices/{deviceID}/activate [post]
// @Router      /devices/{deviceID}/deactivate [post]
func setActiveHandler(svc *Service, active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "deviceID")

		var (
			d   Device
			err error
		)
		if active {
			d, err = svc.Activate(r.Context(), id)
		} else {
			d, err = svc.Deactivate(r.Context(), id)
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, d)
	}
}

func listByPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByElderlyPerson(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, items)
	}
}
