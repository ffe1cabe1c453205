package alerts

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

func (s *Service) List(ctx context.Context) ([]Alert, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Alert, error) {
	return s.repo.Get(ctx, id)
}

// GetCriticalAlertsByElderlyPerson => GET /alerts/critical/{id}. El filtro lo hace el servidor.
func (s *Service) GetCriticalAlertsByElderlyPerson(ctx context.Context, personID string) ([]Alert, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, resources.ErrMissingID
	}
	out := []Alert{}
	if err := s.repo.Do(ctx, http.MethodGet, "critical/"+url.PathEscape(personID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
