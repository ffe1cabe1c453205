package devices

import "context"

// Repository es la colección remota /devices/ más sus rutas propias.
// La implementa resources.Client[Device].
type Repository interface {
	GetAll(ctx context.Context) ([]Device, error)
	Get(ctx context.Context, id string) (Device, error)
	Create(ctx context.Context, payload any) (Device, error)
	Update(ctx context.Context, id string, payload any) (Device, error)
	Delete(ctx context.Context, id string) error
	Do(ctx context.Context, method, sub string, in, out any) error
}
