// Package fakeapi levanta un backend de cuidado en memoria para tests:
// login/registro con JWT, CRUD de las cuatro colecciones y los endpoints
// especiales (alertas críticas, dispositivos por adulto mayor, activar/desactivar).
package fakeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Secret firma los tokens que emite el fake.
const Secret = "fakeapi-secret"

// Familias soportadas.
const (
	ElderlyPersons = "elderly-persons"
	Events         = "events"
	Devices        = "devices"
	Alerts         = "alerts"
)

// Request es lo que el fake registró de cada llamada.
type Request struct {
	Method        string
	Path          string
	Authorization string
	Body          []byte
}

type failure struct {
	status int
	body   string
}

type collection struct {
	order []string
	byID  map[string]map[string]any
}

// Server es el backend fake. Es seguro para uso concurrente.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	users       map[string]string
	issued      map[string]bool
	requireAuth bool
	collections map[string]*collection
	requests    []Request
	failNext    *failure
	nextID      int
}

// New arranca el fake y lo cierra al terminar el test.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:       map[string]string{},
		issued:      map[string]bool{},
		requireAuth: true,
		collections: map[string]*collection{},
	}
	for _, fam := range []string{ElderlyPersons, Events, Devices, Alerts} {
		s.collections[fam] = &collection{byID: map[string]map[string]any{}}
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// AddUser registra credenciales válidas.
func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(email)] = password
}

// AllowAnonymous desactiva el chequeo de bearer token en los recursos.
func (s *Server) AllowAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requireAuth = false
}

// FailNext hace que el próximo request responda status con body crudo.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = &failure{status: status, body: body}
}

// IssueToken emite un token aceptado por el fake, como si hubiera login.
func (s *Server) IssueToken(email string) string {
	tok := mintToken(email, time.Now().Add(time.Hour))
	s.mu.Lock()
	s.issued[tok] = true
	s.mu.Unlock()
	return tok
}

// Seed inserta un registro y devuelve su id.
func (s *Server) Seed(family string, rec map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(family, rec)
}

// Records devuelve la colección en orden de alta.
func (s *Server) Records(family string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collections[family]
	out := make([]map[string]any, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Requests devuelve una copia de lo recibido hasta ahora.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest devuelve el último request recibido.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)
		api.Post("/auth/register", s.handleRegister)
		api.Post("/auth/refresh", s.handleRefresh)

		api.Group(func(pr chi.Router) {
			pr.Use(s.requireBearer)

			pr.Get("/alerts/critical/{personID}", s.handleCritical)
			pr.Get("/devices/elderly/{personID}", s.handleDevicesByPerson)
			pr.Get("/elderly-persons/user/{userID}", s.handlePersonsByUser)
			pr.Patch("/devices/{id}/activate", s.handleSetActive(true))
			pr.Patch("/devices/{id}/deactivate", s.handleSetActive(false))

			for _, fam := range []string{ElderlyPersons, Events, Devices, Alerts} {
				fam := fam
				pr.Get("/"+fam+"/", s.handleList(fam))
				pr.Post("/"+fam+"/", s.handleCreate(fam))
				pr.Get("/"+fam+"/{id}", s.handleGet(fam))
				pr.Put("/"+fam+"/{id}", s.handleUpdate(fam))
				pr.Delete("/"+fam+"/{id}", s.handleDelete(fam))
			}
		})
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		f := s.failNext
		s.failNext = nil
		s.mu.Unlock()

		if f != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		required := s.requireAuth
		s.mu.Unlock()
		if !required {
			next.ServeHTTP(w, r)
			return
		}

		h := r.Header.Get("Authorization")
		tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if h == "" || tok == h {
			detail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		s.mu.Lock()
		ok := s.issued[tok]
		s.mu.Unlock()
		if !ok {
			detail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid json")
		return
	}

	s.mu.Lock()
	pw, ok := s.users[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if !ok || pw != in.Password {
		detail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": s.IssueToken(in.Email),
		"token_type":   "bearer",
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid json")
		return
	}
	email, _ := in["email"].(string)
	password, _ := in["password"].(string)
	if email == "" || password == "" {
		detail(w, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	s.mu.Lock()
	if _, exists := s.users[strings.ToLower(email)]; exists {
		s.mu.Unlock()
		detail(w, http.StatusBadRequest, "El email ya está registrado")
		return
	}
	s.users[strings.ToLower(email)] = password
	s.nextID++
	id := "user-" + strconv.Itoa(s.nextID)
	s.mu.Unlock()

	delete(in, "password")
	in["id"] = id
	in["is_active"] = true
	writeJSON(w, http.StatusCreated, in)
}

// handleRefresh emite un token nuevo para un email registrado, sin pedir bearer.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid json")
		return
	}

	s.mu.Lock()
	_, ok := s.users[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if !ok {
		detail(w, http.StatusUnauthorized, "Usuario no encontrado")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": s.IssueToken(in.Email),
		"token_type":   "bearer",
	})
}

func (s *Server) handleList(fam string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.Records(fam))
	}
}

func (s *Server) handleGet(fam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		rec, ok := s.collections[fam].byID[chi.URLParam(r, "id")]
		s.mu.Unlock()
		if !ok {
			detail(w, http.StatusNotFound, notFound(fam))
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) handleCreate(fam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec == nil {
			detail(w, http.StatusUnprocessableEntity, "invalid json")
			return
		}
		s.mu.Lock()
		id := s.insertLocked(fam, rec)
		out := s.collections[fam].byID[id]
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, out)
	}
}

func (s *Server) handleUpdate(fam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			detail(w, http.StatusUnprocessableEntity, "invalid json")
			return
		}

		s.mu.Lock()
		rec, ok := s.collections[fam].byID[id]
		if ok {
			for k, v := range patch {
				rec[k] = v
			}
			rec["id"] = id
		}
		s.mu.Unlock()

		if !ok {
			detail(w, http.StatusNotFound, notFound(fam))
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) handleDelete(fam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		c := s.collections[fam]
		_, ok := c.byID[id]
		if ok {
			delete(c.byID, id)
			for i, v := range c.order {
				if v == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		}
		s.mu.Unlock()

		if !ok {
			detail(w, http.StatusNotFound, notFound(fam))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleCritical(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	out := make([]map[string]any, 0)
	for _, a := range s.Records(Alerts) {
		if fmt.Sprint(a["elderly_person_id"]) != personID {
			continue
		}
		critical, _ := a["is_critical"].(bool)
		if critical || a["severity"] == "critical" {
			out = append(out, a)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDevicesByPerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	out := make([]map[string]any, 0)
	for _, d := range s.Records(Devices) {
		if fmt.Sprint(d["elderly_person_id"]) == personID {
			out = append(out, d)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePersonsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	out := make([]map[string]any, 0)
	for _, p := range s.Records(ElderlyPersons) {
		if fmt.Sprint(p["user_id"]) == userID {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSetActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		rec, ok := s.collections[Devices].byID[id]
		if ok {
			rec["is_active"] = active
			if active {
				rec["status"] = "active"
			} else {
				rec["status"] = "inactive"
			}
		}
		s.mu.Unlock()

		if !ok {
			detail(w, http.StatusNotFound, notFound(Devices))
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) insertLocked(fam string, rec map[string]any) string {
	c := s.collections[fam]
	id, _ := rec["id"].(string)
	if id == "" {
		s.nextID++
		id = strconv.Itoa(s.nextID)
	}
	stored := make(map[string]any, len(rec)+1)
	for k, v := range rec {
		stored[k] = v
	}
	stored["id"] = id
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = stored
	return id
}

func mintToken(email string, exp time.Time) string {
	claims := jwt.MapClaims{
		"sub":     email,
		"user_id": "user-" + strings.SplitN(email, "@", 2)[0],
		"exp":     exp.Unix(),
		"jti":     strconv.FormatInt(time.Now().UnixNano(), 36),
		"iat":     time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	if err != nil {
		panic(err)
	}
	return tok
}

func notFound(fam string) string {
	return strings.TrimSuffix(fam, "s") + " not found"
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
