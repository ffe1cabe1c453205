package persons

import "context"

// Repository es la colección remota /elderly-persons/.
// La implementa resources.Client[ElderlyPerson].
type Repository interface {
	GetAll(ctx context.Context) ([]ElderlyPerson, error)
	Get(ctx context.Context, id string) (ElderlyPerson, error)
	Create(ctx context.Context, payload any) (ElderlyPerson, error)
	Update(ctx context.Context, id string, payload any) (ElderlyPerson, error)
	Delete(ctx context.Context, id string) error
	Do(ctx context.Context, method, sub string, in, out any) error
}
