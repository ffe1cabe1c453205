// Package session maneja login, logout y el estado de autenticación del panel
// sobre un token.Store inyectado.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eldercare-panel/internal/platform/httpclient"
	"eldercare-panel/internal/platform/logger"
	"eldercare-panel/internal/ports/auth"
	"eldercare-panel/internal/ports/token"
)

type Service struct {
	authn  auth.Authenticator
	tokens token.Store
	claims auth.ClaimsDecoder
	log    logger.Logger
}

type Options struct {
	Claims auth.ClaimsDecoder // opcional
	Log    logger.Logger      // opcional
}

func NewService(authn auth.Authenticator, tokens token.Store, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		authn:  authn,
		tokens: tokens,
		claims: opts.Claims,
		log:    log.With(map[string]any{"component": "session"}),
	}
}

// Login pide un token al backend y lo guarda.
// Si el backend rechaza, devuelve *AuthenticationError y el store queda como estaba.
func (s *Service) Login(ctx context.Context, email, password string) (auth.TokenResponse, error) {
	out, err := s.authn.Login(ctx, auth.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return auth.TokenResponse{}, s.authFailure("login", err)
	}

	if err := s.tokens.Set(ctx, out.AccessToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("store session token: %w", err)
	}

	s.log.Info("login ok", map[string]any{"token_type": out.TokenType})
	return out, nil
}

// Refresh cambia el token vigente por uno nuevo para el mismo usuario (claim sub).
// Si el backend no lo renueva, el token actual queda como estaba.
func (s *Service) Refresh(ctx context.Context) (auth.TokenResponse, error) {
	claims, err := s.Claims(ctx)
	if errors.Is(err, ErrNotAuthenticated) {
		return auth.TokenResponse{}, err
	}
	if err != nil {
		return auth.TokenResponse{}, &AuthenticationError{Err: err}
	}
	if strings.TrimSpace(claims.Email) == "" {
		return auth.TokenResponse{}, &AuthenticationError{Err: ErrNoSubject}
	}

	out, err := s.authn.Refresh(ctx, claims.Email)
	if err != nil {
		return auth.TokenResponse{}, s.authFailure("refresh", err)
	}
	if err := s.tokens.Set(ctx, out.AccessToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("store session token: %w", err)
	}

	s.log.Info("token refreshed", map[string]any{"token_type": out.TokenType})
	return out, nil
}

// authFailure: rechazo del backend o respuesta 2xx inutilizable => *AuthenticationError.
// Transporte y cancelación salen tal cual.
func (s *Service) authFailure(op string, err error) error {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		s.log.Info(op+" rejected", map[string]any{"status": apiErr.Status})
		return &AuthenticationError{Status: apiErr.Status, Detail: apiErr.Detail, Err: err}
	}
	var netErr *httpclient.NetworkError
	if errors.As(err, &netErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	s.log.Warn(op+" reply unusable", map[string]any{"error": err})
	return &AuthenticationError{Err: err}
}

// Logout borra el token local. Sin red; llamar dos veces no falla.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// IsAuthenticated sólo mira si hay token; no valida firma ni expiración.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.tokens.Get(ctx)
	if err != nil {
		s.log.Warn("token store read failed", map[string]any{"error": err})
		return false
	}
	return ok
}

// Register da de alta un usuario. No toca el token.
func (s *Service) Register(ctx context.Context, in auth.RegisterInput) (auth.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	return s.authn.Register(ctx, in)
}

// Claims decodifica el token vigente para mostrarlo. No autoriza nada.
func (s *Service) Claims(ctx context.Context) (auth.Claims, error) {
	tok, ok, err := s.tokens.Get(ctx)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("read session token: %w", err)
	}
	if !ok {
		return auth.Claims{}, ErrNotAuthenticated
	}
	if s.claims == nil {
		return auth.Claims{}, nil
	}
	return s.claims.Decode(tok)
}
