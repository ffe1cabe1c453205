package persons

import (
	"net/http"

	"eldercare-panel/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/elderly-persons", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc))
		pr.Get("/user/{userID}", listByUserHandler(svc))

		pr.Get("/{personID}", getHandler(svc))
		pr.Get("/{personID}/form", editFormHandler(svc))
		pr.Put("/{personID}", updateHandler(svc))
		pr.Delete("/{personID}", deleteHandler(svc))
	})
}

// listHandler godoc
// @Summary     Lista adultos mayores
// @Tags        elderly-persons
// @Produce     json
// @Success     200 {array}  ElderlyPerson
// @Failure     502 {object} respond.ErrorBody
// @Router      /elderly-persons [get]
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

// listByUserHandler godoc
// @Summary     Adultos mayores a cargo de un usuario
// @Tags        elderly-persons
// @Produce     json
// @Param       userID path     string true "id del usuario"
// @Success     200    {array}  ElderlyPerson
// @Router      /elderly-persons/user/{userID} [get]
func listByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, items)
	}
}

// createHandler godoc
// @Summary     Alta de adulto mayor
// @Tags        elderly-persons
// @Accept      json
// @Produce     json
// @Param       form body     Form true "formulario"
// @Success     201  {object} ElderlyPerson
// @Failure     422  {object} respond.ErrorBody
// @Router      /elderly-persons [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := respond.Decode(r, &f); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), f)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, p)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, p)
	}
}

// editFormHandler devuelve el formulario precargado para edición.
func editFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, FormFrom(p))
	}
}

// updateHandler godoc
// @Summary     Edita un adulto mayor
// @Tags        elderly-persons
// @Accept      json
// @Produce     json
// @Param       personID path     string true "id"
// @Param       form     body     Form   true "formulario"
// @Success     200      {object} ElderlyPerson
// @Failure     422      {object} respond.ErrorBody
// @Router      /elderly-persons/{personID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := respond.Decode(r, &f); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "personID"), f)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, p)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "personID")); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.NoContent(w, r)
	}
}
