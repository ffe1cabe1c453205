// Package app arma el grafo del panel (store, cliente HTTP, servicios)
// a partir de la configuración. Lo usan el CLI y el servidor.
package app

import (
	"context"
	"fmt"
	"net/http"

	"eldercare-panel/internal/adapters/auth/backend"
	"eldercare-panel/internal/adapters/storage"
	"eldercare-panel/internal/config"
	"eldercare-panel/internal/domain/alerts"
	"eldercare-panel/internal/domain/dashboard"
	"eldercare-panel/internal/domain/devices"
	"eldercare-panel/internal/domain/events"
	"eldercare-panel/internal/domain/persons"
	"eldercare-panel/internal/domain/resources"
	"eldercare-panel/internal/domain/session"
	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/platform/logger"
	"eldercare-panel/internal/platform/metrics"
	"eldercare-panel/internal/ports/token"
	"eldercare-panel/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Config   config.Config
	Log      logger.Logger
	Tokens   token.Store
	HTTP     *httpclient.Client
	Registry *prometheus.Registry

	Session   *session.Service
	Persons   *persons.Service
	Events    *events.Service
	Devices   *devices.Service
	Alerts    *alerts.Service
	Dashboard *dashboard.Service
}

type Options struct {
	// Tokens reemplaza el store de cfg.Token (tests).
	Tokens token.Store
	// Log reemplaza el logger armado desde cfg.
	Log logger.Logger
}

func Build(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})
	}

	hc, err := httpclient.NewWithBaseURL(cfg.APIBaseURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}
	hc.Log = log.With(map[string]any{"component": "httpclient"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	hc.Observer = metrics.NewOutbound(reg)

	tokens := opts.Tokens
	if tokens == nil {
		tokens, err = storage.NewTokenStore(ctx, cfg.Token)
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:   cfg,
		Log:      log,
		Tokens:   tokens,
		HTTP:     hc,
		Registry: reg,
	}

	a.Session = session.NewService(backend.NewClient(hc), tokens, session.Options{
		Claims: backend.NewClaimsDecoder(),
		Log:    log,
	})
	a.Persons = persons.NewService(resources.New[persons.ElderlyPerson](hc, tokens, resources.ElderlyPersonsPath))
	a.Events = events.NewService(resources.New[events.Event](hc, tokens, resources.EventsPath))
	a.Devices = devices.NewService(resources.New[devices.Device](hc, tokens, resources.DevicesPath))
	a.Alerts = alerts.NewService(resources.New[alerts.Alert](hc, tokens, resources.AlertsPath))
	a.Dashboard = dashboard.NewService(a.Persons, a.Events, a.Devices, a.Alerts)

	log.Debug("app built", map[string]any{
		"api_base_url": cfg.APIBaseURL,
		"token_driver": cfg.Token.Driver,
	})
	return a, nil
}

// Handler devuelve el router del panel.
func (a *App) Handler() http.Handler {
	return router.NewRouter(router.Options{
		AppName:   a.Config.AppName,
		Log:       a.Log,
		Session:   a.Session,
		Persons:   a.Persons,
		Events:    a.Events,
		Devices:   a.Devices,
		Alerts:    a.Alerts,
		Dashboard: a.Dashboard,
		Metrics:   promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}),
	})
}

func (a *App) Close() error {
	if a == nil || a.Tokens == nil {
		return nil
	}
	if err := a.Tokens.Close(); err != nil {
		return fmt.Errorf("close token store: %w", err)
	}
	return nil
}
