package events

import "context"

// Repository es la colección remota /events/.
// La implementa resources.Client[Event].
type Repository interface {
	GetAll(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, payload any) (Event, error)
	Update(ctx context.Context, id string, payload any) (Event, error)
	Delete(ctx context.Context, id string) error
}
