package events

import (
	"context"
	"time"

	"eldercare-panel/internal/platform/dateutil"
)

type Service struct {
	repo Repository
	loc  *time.Location
}

// NewService usa la zona del panel (Argentina) para fechas sin zona.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, loc: dateutil.Argentina}
}

// WithLocation cambia la zona de interpretación y de vista.
func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.loc = loc
	}
	return s
}

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	return s.repo.Get(ctx, id)
}

// Create valida antes de llamar al backend; con errores devuelve *validation.Error.
func (s *Service) Create(ctx context.Context, f Form) (Event, error) {
	if err := ValidateForm(f, s.loc).Err(); err != nil {
		return Event{}, err
	}
	return s.repo.Create(ctx, f.Payload(s.loc))
}

func (s *Service) Update(ctx context.Context, id string, f Form) (Event, error) {
	if err := ValidateForm(f, s.loc).Err(); err != nil {
		return Event{}, err
	}
	return s.repo.Update(ctx, id, f.Payload(s.loc))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
