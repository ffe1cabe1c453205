package router

import (
	"net/http"

	_ "eldercare-panel/docs"
	"eldercare-panel/internal/domain/alerts"
	"eldercare-panel/internal/domain/dashboard"
	"eldercare-panel/internal/domain/devices"
	"eldercare-panel/internal/domain/events"
	"eldercare-panel/internal/domain/persons"
	"eldercare-panel/internal/domain/session"
	"eldercare-panel/internal/middleware"
	"eldercare-panel/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AppName string
	Log     logger.Logger // puede ser nil

	Session   *session.Service
	Persons   *persons.Service
	Events    *events.Service
	Devices   *devices.Service
	Alerts    *alerts.Service
	Dashboard *dashboard.Service

	// Opcional: handler de /metrics (promhttp).
	Metrics http.Handler
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Sin sesión configurada todo es anónimo; un *Service nil no puede llegar
	// al middleware como interfaz no-nil.
	var src middleware.SessionSource
	if opts.Session != nil {
		src = opts.Session
	}

	// Todo lo navegable pasa por el guard.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.SessionContext(src))
		pr.Use(middleware.RouteGuard)
		pr.Use(middleware.SubmitOnce())

		if opts.Session != nil {
			session.RegisterRoutes(pr, opts.Session)
		}
		dashboard.RegisterRoutes(pr, opts.Dashboard, opts.AppName)

		persons.RegisterRoutes(pr, opts.Persons)
		events.RegisterRoutes(pr, opts.Events)
		devices.RegisterRoutes(pr, opts.Devices)
		alerts.RegisterRoutes(pr, opts.Alerts)
	})

	return r
}
