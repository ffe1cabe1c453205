package alerts_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	mem "eldercare-panel/internal/adapters/storage/memory"
	"eldercare-panel/internal/domain/alerts"
	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/platform/testing/fakeapi"
)

func newService(t *testing.T) (*alerts.Service, *fakeapi.Server) {
	t.Helper()
	api := fakeapi.New(t)
	hc, err := httpclient.NewWithBaseURL(api.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	tokens := mem.NewTokenStore()
	if err := tokens.Set(context.Background(), api.IssueToken("staff@example.com")); err != nil {
		t.Fatalf("set token: %v", err)
	}
	return alerts.NewService(resources.New[alerts.Alert](hc, tokens, resources.AlertsPath)), api
}

func TestGetCriticalAlertsByElderlyPerson(t *testing.T) {
	svc, api := newService(t)
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Caída", "severity": "critical", "elderly_person_id": "p1"})
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Batería baja", "severity": "low", "elderly_person_id": "p1"})
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Pulso", "is_critical": true, "elderly_person_id": "p1"})
	api.Seed(fakeapi.Alerts, map[string]any{"title": "Otro", "severity": "critical", "elderly_person_id": "p2"})

	items, err := svc.GetCriticalAlertsByElderlyPerson(context.Background(), "p1")
	if err != nil {
		t.Fatalf("critical: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Caída" || items[1].Title != "Pulso" {
		t.Fatalf("unexpected alerts %+v", items)
	}
	for _, a := range items {
		if !a.Critical() || a.PersonID() != "p1" {
			t.Fatalf("unexpected alert %+v", a)
		}
	}

	last, _ := api.LastRequest()
	if last.Method != http.MethodGet || last.Path != "/api/v1/alerts/critical/p1" {
		t.Fatalf("unexpected request %s %s", last.Method, last.Path)
	}
}

func TestList(t *testing.T) {
	svc, api := newService(t)
	api.Seed(fakeapi.Alerts, map[string]any{"title": "A", "cared_person_id": "p9"})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].PersonID() != "p9" || items[0].Critical() {
		t.Fatalf("unexpected alerts %+v", items)
	}
}
