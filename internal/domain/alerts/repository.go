package alerts

import "context"

// Repository es la parte de /alerts/ que usa el panel (sin escritura).
// La implementa resources.Client[Alert].
type Repository interface {
	GetAll(ctx context.Context) ([]Alert, error)
	Get(ctx context.Context, id string) (Alert, error)
	Do(ctx context.Context, method, sub string, in, out any) error
}
