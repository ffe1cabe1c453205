package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/ports/auth"
)

const (
	LoginPath    = "/api/v1/auth/login"
	RegisterPath = "/api/v1/auth/register"
	RefreshPath  = "/api/v1/auth/refresh"
)

var (
	ErrNotConfigured = errors.New("auth backend not configured")
	ErrEmptyToken    = errors.New("auth backend returned an empty access token")
)

// Client implementa auth.Authenticator contra los endpoints /auth del backend.
// Los errores de transporte y no-2xx salen tal cual de httpclient.
type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Login manda {email, password} y devuelve la respuesta del backend sin tocarla.
// Las credenciales no se registran en logs.
func (c *Client) Login(ctx context.Context, in auth.Credentials) (auth.TokenResponse, error) {
	if !c.IsConfigured() {
		return auth.TokenResponse{}, ErrNotConfigured
	}

	var out auth.TokenResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, LoginPath, nil, in, &out); err != nil {
		return auth.TokenResponse{}, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return auth.TokenResponse{}, ErrEmptyToken
	}
	return out, nil
}

// Register da de alta un usuario. No inicia sesión.
func (c *Client) Register(ctx context.Context, in auth.RegisterInput) (auth.User, error) {
	if !c.IsConfigured() {
		return auth.User{}, ErrNotConfigured
	}

	var out auth.User
	if err := c.http.DoJSON(ctx, http.MethodPost, RegisterPath, nil, in, &out); err != nil {
		return auth.User{}, err
	}
	return out, nil
}

// Refresh pide un token nuevo para email. El backend no pide bearer acá.
func (c *Client) Refresh(ctx context.Context, email string) (auth.TokenResponse, error) {
	if !c.IsConfigured() {
		return auth.TokenResponse{}, ErrNotConfigured
	}

	in := map[string]string{"email": email}
	var out auth.TokenResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, RefreshPath, nil, in, &out); err != nil {
		return auth.TokenResponse{}, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return auth.TokenResponse{}, ErrEmptyToken
	}
	return out, nil
}
