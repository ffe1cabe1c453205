package session

import (
	"net/http"
	"strings"

	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/respond"
	"eldercare-panel/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

const MsgCredentialsRequired = "email and password are required"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	TokenType string `json:"token_type"`
	Redirect  string `json:"redirect"`
}

type statusResponse struct {
	Authenticated bool         `json:"authenticated"`
	Claims        *auth.Claims `json:"claims,omitempty"`
}

type formView struct {
	Form   string   `json:"form"`
	Fields []string `json:"fields"`
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/login", formHandler("login", "email", "password"))
	r.Post("/login", loginHandler(svc))

	r.Get("/register", formHandler("register", "email", "password", "first_name", "last_name", "phone"))
	r.Post("/register", registerHandler(svc))

	r.Post("/logout", logoutHandler(svc))
	r.Get("/session", statusHandler(svc))
	r.Post("/session/refresh", refreshHandler(svc))
}

func formHandler(name string, fields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, formView{Form: name, Fields: fields})
	}
}

// loginHandler godoc
// @Summary     Inicia sesión contra el backend y guarda el token
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       credentials body     loginRequest true "credenciales"
// @Success     200         {object} loginResponse
// @Failure     401         {object} respond.ErrorBody
// @Router      /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		var errs validation.Errors
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			errs.Add("email", MsgCredentialsRequired)
		}
		if err := errs.Err(); err != nil {
			respond.Error(w, r, err)
			return
		}

		out, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		// El token queda en el store; no se devuelve al navegador.
		respond.JSON(w, r, http.StatusOK, loginResponse{TokenType: out.TokenType, Redirect: "/"})
	}
}

// registerHandler godoc
// @Summary     Alta de usuario del panel
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       user body     auth.RegisterInput true "usuario"
// @Success     201  {object} auth.User
// @Failure     400  {object} respond.ErrorBody
// @Router      /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in auth.RegisterInput
		if err := respond.Decode(r, &in); err != nil {
			respond.Detail(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		var errs validation.Errors
		if strings.TrimSpace(in.Email) == "" || in.Password == "" {
			errs.Add("email", MsgCredentialsRequired)
		}
		if err := errs.Err(); err != nil {
			respond.Error(w, r, err)
			return
		}

		u, err := svc.Register(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusCreated, u)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, map[string]string{"redirect": "/login"})
	}
}

func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := statusResponse{Authenticated: svc.IsAuthenticated(r.Context())}
		if out.Authenticated {
			if c, err := svc.Claims(r.Context()); err == nil {
				out.Claims = &c
			}
		}
		respond.JSON(w, r, http.StatusOK, out)
	}
}

// refreshHandler godoc
// @Summary     Renueva el token de la sesión
// @Tags        session
// @Produce     json
// @Success     200 {object} loginResponse
// @Failure     401 {object} respond.ErrorBody
// @Router      /session/refresh [post]
func refreshHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Refresh(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, r, http.StatusOK, loginResponse{TokenType: out.TokenType, Redirect: "/"})
	}
}
