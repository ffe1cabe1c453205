package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outbound cuenta los requests que el panel le hace al backend.
// Implementa httpclient.Observer.
type Outbound struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewOutbound(reg prometheus.Registerer) *Outbound {
	m := &Outbound{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eldercare_panel",
			Name:      "backend_requests_total",
			Help:      "Requests sent to the care backend, by resource family, method and status.",
		}, []string{"family", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eldercare_panel",
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests sent to the care backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"family", "method"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Outbound) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	fam := Family(path)
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(fam, method, code).Inc()
	m.duration.WithLabelValues(fam, method).Observe(elapsed.Seconds())
}

// Family reduce un path a su colección para no explotar la cardinalidad:
// /api/v1/elderly-persons/42 => elderly-persons.
func Family(path string) string {
	p := strings.Trim(path, "/")
	p = strings.TrimPrefix(p, "api/v1")
	p = strings.Trim(p, "/")
	if p == "" {
		return "root"
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
