package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	mem "eldercare-panel/internal/adapters/storage/memory"
	"eldercare-panel/internal/app"
	"eldercare-panel/internal/config"
	"eldercare-panel/internal/platform/logger"
	"eldercare-panel/internal/platform/testing/fakeapi"
	"eldercare-panel/internal/router"
)

func newPanel(t *testing.T) (*httptest.Server, *fakeapi.Server) {
	t.Helper()

	api := fakeapi.New(t)
	api.AddUser("admin@example.com", "secret")

	cfg := config.Config{
		APIBaseURL:  api.URL,
		HTTPTimeout: 2 * time.Second,
		AppName:     "eldercare-panel",
	}
	a, err := app.Build(context.Background(), cfg, app.Options{
		Tokens: mem.NewTokenStore(),
		Log:    logger.Nop(),
	})
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	ts := httptest.NewServer(a.Handler())
	t.Cleanup(ts.Close)
	return ts, api
}

func TestHTTP_EndToEnd_SessionAndCRUD(t *testing.T) {
	ts, api := newPanel(t)

	// 1) Sin sesión: las vistas internas redirigen a /login
	{
		st, _, loc := doReq(t, ts.URL, "GET", "/events", nil)
		if st != http.StatusFound || loc != "/login" {
			t.Fatalf("expected 302 to /login, got %d %q", st, loc)
		}
	}

	// 2) La raíz es pública y muestra la portada
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on root, got %d body=%s", st, string(body))
		}
		var out map[string]any
		mustJSON(t, body, &out)
		if out["authenticated"] != false {
			t.Fatalf("expected anonymous landing, got %v", out)
		}
	}

	// 3) Login con credenciales malas => 401 con el detail del backend
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"email":    "admin@example.com",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", st, string(body))
		}
		if detail(t, body) != "Invalid credentials" {
			t.Fatalf("unexpected detail %s", string(body))
		}
	}

	// 4) Login ok; el token no vuelve al navegador
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"email":    "admin@example.com",
			"password": "secret",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "access_token") {
			t.Fatalf("token leaked in response: %s", string(body))
		}
	}

	// 5) Con sesión, /login redirige al inicio
	{
		st, _, loc := doReq(t, ts.URL, "GET", "/login", nil)
		if st != http.StatusFound || loc != "/" {
			t.Fatalf("expected 302 to /, got %d %q", st, loc)
		}
	}

	// 6) Formulario inválido: 422 y ningún request al backend
	{
		before := countPath(api, "/api/v1/elderly-persons/")
		st, body, _ := doReq(t, ts.URL, "POST", "/elderly-persons", map[string]any{
			"first_name": "",
			"last_name":  "Pérez",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), "first and last name are required") {
			t.Fatalf("unexpected body %s", string(body))
		}
		if after := countPath(api, "/api/v1/elderly-persons/"); after != before {
			t.Fatalf("invalid form reached the backend")
		}
	}

	// 7) Alta válida (edad como texto)
	personID := ""
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/elderly-persons", map[string]any{
			"first_name": "Juan",
			"last_name":  "Pérez",
			"age":        "75",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		var p map[string]any
		mustJSON(t, body, &p)
		personID, _ = p["id"].(string)
		if personID == "" || p["age"] != float64(75) {
			t.Fatalf("unexpected person %v", p)
		}

		last, _ := api.LastRequest()
		if !strings.HasPrefix(last.Authorization, "Bearer ") {
			t.Fatalf("backend request without bearer token")
		}
	}

	// 8) Evento con fin antes del inicio => 422
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/events", map[string]any{
			"title":          "X",
			"start_datetime": "2024-07-01T10:00",
			"end_datetime":   "2024-07-01T09:00",
		})
		if st != http.StatusUnprocessableEntity || !strings.Contains(string(body), "end cannot precede start") {
			t.Fatalf("expected 422 end-before-start, got %d body=%s", st, string(body))
		}
	}

	// 9) Evento válido
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/events", map[string]any{
			"title":             "Control médico",
			"event_type":        "medical",
			"start_datetime":    "2024-07-01T10:00",
			"end_datetime":      "2024-07-01T11:00",
			"elderly_person_id": personID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 event, got %d body=%s", st, string(body))
		}
	}

	// 10) Lista de eventos con fecha para mostrar (zona del panel)
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/events", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 events, got %d", st)
		}
		var items []map[string]any
		mustJSON(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 event, got %d", len(items))
		}
		start, _ := items[0]["start"].(map[string]any)
		if start["fecha"] != "01/07/2024" || start["hora"] != "10:00" {
			t.Fatalf("unexpected display parts %v", items[0])
		}
	}

	// 11) Alertas críticas del adulto mayor
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Caída", "severity": "critical", "elderly_person_id": personID})
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Batería", "severity": "low", "elderly_person_id": personID})
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/alerts/critical/"+personID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 critical alerts, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		mustJSON(t, body, &items)
		if len(items) != 1 || items[0]["title"] != "Caída" {
			t.Fatalf("unexpected critical alerts %v", items)
		}
	}

	// 12) Dashboard con totales
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var out struct {
			Authenticated bool   `json:"authenticated"`
			User          string `json:"user"`
			Summary       struct {
				ElderlyPersons int `json:"elderly_persons"`
				Events         int `json:"events"`
				Alerts         int `json:"alerts"`
				CriticalAlerts int `json:"critical_alerts"`
			} `json:"summary"`
		}
		mustJSON(t, body, &out)
		if !out.Authenticated || out.User != "admin@example.com" {
			t.Fatalf("unexpected session in dashboard %+v", out)
		}
		if out.Summary.ElderlyPersons != 1 || out.Summary.Events != 1 || out.Summary.Alerts != 2 || out.Summary.CriticalAlerts != 1 {
			t.Fatalf("unexpected summary %+v", out.Summary)
		}
	}

	// 13) Borrado
	{
		st, body, _ := doReq(t, ts.URL, "DELETE", "/elderly-persons/"+personID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204, got %d body=%s", st, string(body))
		}
	}

	// 14) Logout: vuelve a estar cerrado
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/logout", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d body=%s", st, string(body))
		}
		st, _, loc := doReq(t, ts.URL, "GET", "/alerts", nil)
		if st != http.StatusFound || loc != "/login" {
			t.Fatalf("expected 302 to /login after logout, got %d %q", st, loc)
		}
	}
}

func TestHTTP_BackendErrorsAreMapped(t *testing.T) {
	ts, api := newPanel(t)

	login(t, ts.URL)

	// 404 del backend pasa con su detail
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/devices/missing", nil)
		if st != http.StatusNotFound || detail(t, body) != "device not found" {
			t.Fatalf("expected 404 device not found, got %d body=%s", st, string(body))
		}
	}

	// 500 sin detail => mensaje genérico
	api.FailNext(http.StatusInternalServerError, "oops")
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/events", nil)
		if st != http.StatusInternalServerError || detail(t, body) != "request failed" {
			t.Fatalf("expected 500 request failed, got %d body=%s", st, string(body))
		}
	}

	// Backend caído => 502
	api.Close()
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/alerts", nil)
		if st != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_RecordsKeepUnmodeledFields(t *testing.T) {
	ts, api := newPanel(t)
	login(t, ts.URL)

	personID := api.Seed(fakeapi.ElderlyPersons, map[string]any{
		"first_name": "Ana", "last_name": "Gómez", "age": 75, "user_id": "u", "is_deleted": false,
	})
	alertID := api.Seed(fakeapi.Alerts, map[string]any{
		"title": "Caída", "severity": "high", "priority": 2, "escalation_level": 1,
		"alert_data": map[string]any{"sensor": "pir"}, "is_critical": false,
	})
	api.Seed(fakeapi.Events, map[string]any{
		"title": "Control", "start_datetime": "2024-07-01T13:00:00Z", "recurrence": "weekly",
	})

	for path, fam := range map[string]string{
		"/elderly-persons/" + personID: fakeapi.ElderlyPersons,
		"/alerts/" + alertID:           fakeapi.Alerts,
	} {
		st, body, _ := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("%s: status %d body=%s", path, st, body)
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if want := roundTrip(t, api.Records(fam)[0]); !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: echo changed\n got %v\nwant %v", path, got, want)
		}
	}

	st, body, _ := doReq(t, ts.URL, "GET", "/events", nil)
	if st != http.StatusOK {
		t.Fatalf("events: status %d", st)
	}
	var views []map[string]any
	mustJSON(t, body, &views)
	if len(views) != 1 || views[0]["recurrence"] != "weekly" || views[0]["start"] == nil {
		t.Fatalf("unexpected event views %v", views)
	}
	if _, ok := views[0]["end"]; ok {
		t.Fatalf("end must be omitted when absent, got %v", views[0])
	}
}

func roundTrip(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	mustJSON(t, b, &out)
	return out
}

func TestHTTP_WithoutSessionEverythingIsAnonymous(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AppName: "eldercare-panel"}))
	t.Cleanup(ts.Close)

	st, _, loc := doReq(t, ts.URL, "GET", "/events", nil)
	if st != http.StatusFound || loc != "/login" {
		t.Fatalf("expected 302 to /login, got %d %q", st, loc)
	}

	st, body, _ := doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK {
		t.Fatalf("expected public landing, got %d body=%s", st, body)
	}
	var out map[string]any
	mustJSON(t, body, &out)
	if out["authenticated"] != false {
		t.Fatalf("expected anonymous landing, got %v", out)
	}
}

func TestHTTP_OperationalEndpoints(t *testing.T) {
	ts, _ := newPanel(t)

	{
		st, body, _ := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("unexpected health %d %s", st, string(body))
		}
	}

	login(t, ts.URL)
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), "eldercare_panel_backend_requests_total") {
			t.Fatalf("outbound metrics missing")
		}
	}
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "/alerts/critical/{personID}") {
			t.Fatalf("unexpected swagger doc %d", st)
		}
	}
}

// -------------------------
// Helpers
// -------------------------

func login(t *testing.T, baseURL string) {
	t.Helper()
	st, body, _ := doReq(t, baseURL, "POST", "/login", map[string]any{
		"email":    "admin@example.com",
		"password": "secret",
	})
	if st != http.StatusOK {
		t.Fatalf("login failed: %d %s", st, string(body))
	}
}

var noRedirect = &http.Client{
	Timeout: 5 * time.Second,
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := noRedirect.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, resp.Header.Get("Location")
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
}

func detail(t *testing.T, b []byte) string {
	t.Helper()
	var out struct {
		Detail string `json:"detail"`
	}
	mustJSON(t, b, &out)
	return out.Detail
}

func countPath(api *fakeapi.Server, path string) int {
	n := 0
	for _, r := range api.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}
