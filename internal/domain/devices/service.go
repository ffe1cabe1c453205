package devices

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"eldercare-panel/internal/domain/resources"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Device, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Device, error) {
	return s.repo.Get(ctx, id)
}

// Create y Update mandan el payload sin tocarlo.
func (s *Service) Create(ctx context.Context, payload Device) (Device, error) {
	return s.repo.Create(ctx, payload)
}

func (s *Service) Update(ctx context.Context, id string, payload Device) (Device, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListByElderlyPerson => GET /devices/elderly/{id}
func (s *Service) ListByElderlyPerson(ctx context.Context, personID string) ([]Device, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, resources.ErrMissingID
	}
	out := []Device{}
	if err := s.repo.Do(ctx, http.MethodGet, "elderly/"+url.PathEscape(personID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Activate => PATCH /devices/{id}/activate
func (s *Service) Activate(ctx context.Context, id string) (Device, error) {
	return s.setActive(ctx, id, "activate")
}

// Deactivate => PATCH /devices/{id}/deactivate
func (s *Service) Deactivate(ctx context.Context, id string) (Device, error) {
	return s.setActive(ctx, id, "deactivate")
}

func (s *Service) setActive(ctx context.Context, id, action string) (Device, error) {
	if strings.TrimSpace(id) == "" {
		return nil, resources.ErrMissingID
	}
	var out Device
	if err := s.repo.Do(ctx, http.MethodPatch, url.PathEscape(id)+"/"+action, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
