package events

import (
	"net/http"

	"eldercare-panel/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/events", func(er chi.Router) {
		er.Get("/", listHandler(svc))
		er.Post("/", createHandler(svc))
		er.Get("/types", typesHandler())

		er.Get("/{eventID}", getHandler(svc))
		er.Get("/{eventID}/form", editFormHandler(svc))
		er.Put("/{eventID}", updateHandler(svc))
		er.Delete("/{eventID}", deleteHandler(svc))
	})
}

// listHandler godoc
// @Summary     Lista eventos con fecha y hora para mostrar
// @Tags        events
// @Produce     json
// @Success     200 {array}  View
// @Failure     502 {object} respond.ErrorBody
// @Router      /events [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]View, 0, len(items))
		for _, e := range items {
			out = append(out, NewView(e, svc.Location()))
		}
		respond.JSON(w, r, http.StatusOK, out)
	}
}

// createHandler godoc
// @Summary     Alta de evento
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       form body     Form true "formulario"
// @Success     201  {object} Event
// @Failure     422  {object} respond.ErrorBody
// @Router      /events [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := respond.Decode(r, &f); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Create(r.Context(), f)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, e)
	}
}

func typesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, KnownTypes)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Get(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, NewView(e, svc.Location()))
	}
}

func editFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Get(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, FormFrom(e, svc.Location()))
	}
}

// updateHandler godoc
// @Summary     Edita un evento
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       eventID path     string true "id"
// @Param       form    body     Form   true "formulario"
// @Success     200     {object} Event
// @Failure     422     {object} respond.ErrorBody
// @Router      /events/{eventID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := respond.Decode(r, &f); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), f)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, e)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.NoContent(w, r)
	}
}
