package persons

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

func (s *Service) List(ctx context.Context) ([]ElderlyPerson, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (ElderlyPerson, error) {
	return s.repo.Get(ctx, id)
}

// Create valida y recién ahí llama al backend. Con errores de formulario
// devuelve *validation.Error y no sale ningún request.
func (s *Service) Create(ctx context.Context, f Form) (ElderlyPerson, error) {
	if err := ValidateForm(f).Err(); err != nil {
		return ElderlyPerson{}, err
	}
	return s.repo.Create(ctx, f.Payload())
}

func (s *Service) Update(ctx context.Context, id string, f Form) (ElderlyPerson, error) {
	if err := ValidateForm(f).Err(); err != nil {
		return ElderlyPerson{}, err
	}
	return s.repo.Update(ctx, id, f.Payload())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListByUser => GET /elderly-persons/user/{id}: los adultos mayores a cargo de un familiar.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]ElderlyPerson, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, resources.ErrMissingID
	}
	out := []ElderlyPerson{}
	if err := s.repo.Do(ctx, http.MethodGet, "user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
