package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFamily(t *testing.T) {
	cases := map[string]string{
		"/api/v1/elderly-persons/":       "elderly-persons",
		"/api/v1/elderly-persons/42":     "elderly-persons",
		"/api/v1/alerts/critical/abc":    "alerts",
		"/api/v1/auth/login":             "auth",
		"/":                              "root",
		"/health":                        "health",
	}
	for in, want := range cases {
		if got := Family(in); got != want {
			t.Fatalf("Family(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOutbound_CountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOutbound(reg)

	m.ObserveRequest("GET", "/api/v1/events/", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/events/", 200, 12*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/events/", 0, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("events", "GET", "200")); got != 2 {
		t.Fatalf("expected 2 ok requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("events", "POST", "error")); got != 1 {
		t.Fatalf("expected 1 transport error, got %v", got)
	}
}
