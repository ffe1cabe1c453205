// Package dashboard arma la vista de inicio del panel con los totales de
// cada colección, cargados en paralelo.
package dashboard

import (
	"context"

	"eldercare-panel/internal/domain/alerts"
	"eldercare-panel/internal/domain/devices"
	"eldercare-panel/internal/domain/events"
	"eldercare-panel/internal/domain/persons"

	"golang.org/x/sync/errgroup"
)

type Summary struct {
	ElderlyPersons int `json:"elderly_persons"`
	Events         int `json:"events"`
	Devices        int `json:"devices"`
	ActiveDevices  int `json:"active_devices"`
	Alerts         int `json:"alerts"`
	CriticalAlerts int `json:"critical_alerts"`
}

type Service struct {
	persons *persons.Service
	events  *events.Service
	devices *devices.Service
	alerts  *alerts.Service
}

func NewService(p *persons.Service, e *events.Service, d *devices.Service, a *alerts.Service) *Service {
	return &Service{persons: p, events: e, devices: d, alerts: a}
}

// Summary hace un GET por colección, en paralelo. El primer error cancela el resto.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.persons.List(ctx)
		out.ElderlyPersons = len(items)
		return err
	})
	g.Go(func() error {
		items, err := s.events.List(ctx)
		out.Events = len(items)
		return err
	})
	g.Go(func() error {
		items, err := s.devices.List(ctx)
		out.Devices = len(items)
		for _, d := range items {
			if d.Active() {
				out.ActiveDevices++
			}
		}
		return err
	})
	g.Go(func() error {
		items, err := s.alerts.List(ctx)
		out.Alerts = len(items)
		for _, a := range items {
			if a.Critical() {
				out.CriticalAlerts++
			}
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return out, nil
}
