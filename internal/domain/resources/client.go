// Package resources implementa el cliente CRUD genérico sobre una colección REST
// del backend (/api/v1/<familia>/), con el bearer token del store.
package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/ports/token"
)

// APIPrefix es la raíz de todos los recursos del backend.
const APIPrefix = "/api/v1/"

// Rutas base de cada familia.
const (
	ElderlyPersonsPath = APIPrefix + "elderly-persons/"
	EventsPath         = APIPrefix + "events/"
	DevicesPath        = APIPrefix + "devices/"
	AlertsPath         = APIPrefix + "alerts/"
)

// Client[T] es un cliente de una familia de recursos. T es el registro
// que devuelve el backend; los payloads se mandan tal cual.
type Client[T any] struct {
	http   *httpclient.Client
	tokens token.Store
	base   string
}

// New fija el cliente a basePath (p.ej. ElderlyPersonsPath).
func New[T any](hc *httpclient.Client, tokens token.Store, basePath string) *Client[T] {
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return &Client[T]{http: hc, tokens: tokens, base: basePath}
}

// BasePath devuelve la ruta de la colección.
func (c *Client[T]) BasePath() string { return c.base }

// GetAll lista la colección en el orden que la devuelve el servidor.
func (c *Client[T]) GetAll(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := c.Do(ctx, http.MethodGet, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get trae un registro por id.
func (c *Client[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	if err := c.checkID(id); err != nil {
		return out, err
	}
	err := c.Do(ctx, http.MethodGet, url.PathEscape(id), nil, &out)
	return out, err
}

// Create manda payload y devuelve el registro que hace eco el servidor.
func (c *Client[T]) Create(ctx context.Context, payload any) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPost, "", payload, &out)
	return out, err
}

// Update reemplaza el registro id con payload (PUT).
func (c *Client[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	var out T
	if err := c.checkID(id); err != nil {
		return out, err
	}
	err := c.Do(ctx, http.MethodPut, url.PathEscape(id), payload, &out)
	return out, err
}

// Delete borra el registro id. El backend responde sin cuerpo.
func (c *Client[T]) Delete(ctx context.Context, id string) error {
	if err := c.checkID(id); err != nil {
		return err
	}
	return c.Do(ctx, http.MethodDelete, url.PathEscape(id), nil, nil)
}

// Do ejecuta un request contra base+sub con el token vigente.
// Lo usan las operaciones propias de cada familia (alertas críticas, activar dispositivo...).
func (c *Client[T]) Do(ctx context.Context, method, sub string, in, out any) error {
	headers, err := c.authHeaders(ctx)
	if err != nil {
		return err
	}
	return c.http.DoJSON(ctx, method, c.base+sub, headers, in, out)
}

// authHeaders agrega Authorization sólo si hay token; sin token el request
// sale igual y el backend decide (401).
func (c *Client[T]) authHeaders(ctx context.Context) (map[string]string, error) {
	if c.tokens == nil {
		return nil, nil
	}
	tok, ok, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return map[string]string{"Authorization": "Bearer " + tok}, nil
}

func (c *Client[T]) checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	return nil
}
