package devices_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	mem "eldercare-panel/internal/adapters/storage/memory"
	"eldercare-panel/internal/domain/devices"
	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/platform/testing/fakeapi"
)

func newService(t *testing.T) (*devices.Service, *fakeapi.Server) {
	t.Helper()
	api := fakeapi.New(t)
	api.AllowAnonymous()
	hc, err := httpclient.NewWithBaseURL(api.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	repo := resources.New[devices.Device](hc, mem.NewTokenStore(), resources.DevicesPath)
	return devices.NewService(repo), api
}

func TestListByElderlyPerson(t *testing.T) {
	svc, api := newService(t)
	api.Seed(fakeapi.Devices, map[string]any{"name": "Pulsera", "elderly_person_id": "p1"})
	api.Seed(fakeapi.Devices, map[string]any{"name": "Sensor", "elderly_person_id": "p2"})

	items, err := svc.ListByElderlyPerson(context.Background(), "p1")
	if err != nil {
		t.Fatalf("list by person: %v", err)
	}
	if len(items) != 1 || items[0]["name"] != "Pulsera" || items[0].ElderlyPersonID() != "p1" {
		t.Fatalf("unexpected devices %v", items)
	}

	last, _ := api.LastRequest()
	if last.Method != http.MethodGet || last.Path != "/api/v1/devices/elderly/p1" {
		t.Fatalf("unexpected request %s %s", last.Method, last.Path)
	}
}

func TestActivateDeactivate(t *testing.T) {
	svc, api := newService(t)
	id := api.Seed(fakeapi.Devices, map[string]any{"name": "Pulsera", "is_active": false})

	d, err := svc.Activate(context.Background(), id)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !d.Active() || d.ID() != id {
		t.Fatalf("expected active device, got %v", d)
	}
	last, _ := api.LastRequest()
	if last.Method != http.MethodPatch || last.Path != "/api/v1/devices/"+id+"/activate" {
		t.Fatalf("unexpected request %s %s", last.Method, last.Path)
	}

	d, err = svc.Deactivate(context.Background(), id)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if d.Active() {
		t.Fatalf("expected inactive device, got %v", d)
	}
}

func TestPassThroughAttributes(t *testing.T) {
	svc, _ := newService(t)

	in := devices.Device{"name": "Pulsera", "battery": 87.0, "firmware": map[string]any{"v": "1.2"}}
	out, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out["battery"] != 87.0 || out.ID() == "" {
		t.Fatalf("attributes must pass through unchanged, got %v", out)
	}
	fw, _ := out["firmware"].(map[string]any)
	if fw["v"] != "1.2" {
		t.Fatalf("nested attributes lost: %v", out)
	}
}

func TestMissingIDs(t *testing.T) {
	svc, api := newService(t)

	if _, err := svc.Activate(context.Background(), ""); !errors.Is(err, resources.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if _, err := svc.ListByElderlyPerson(context.Background(), " "); !errors.Is(err, resources.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if n := len(api.Requests()); n != 0 {
		t.Fatalf("no requests expected, got %d", n)
	}
}

func TestDeviceActiveFallsBackToStatus(t *testing.T) {
	if !(devices.Device{"status": "active"}).Active() {
		t.Fatalf("status active should count")
	}
	if (devices.Device{}).Active() {
		t.Fatalf("empty device is not active")
	}
	if got := (devices.Device{"id": 42.0}).ID(); got != "42" {
		t.Fatalf("numeric id should stringify, got %q", got)
	}
}
