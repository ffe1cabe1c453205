package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eldercare-panel/internal/ports/token"

	goredis "github.com/redis/go-redis/v9"
)

// Config de conexión. Prefix + Key forman la clave final.
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
	Key      string
}

type TokenStore struct {
	client *goredis.Client
	key    string
}

// NewTokenStore conecta y hace ping. El token se guarda sin TTL:
// la expiración la descubre el backend.
func NewTokenStore(ctx context.Context, cfg Config) (*TokenStore, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("redis address required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = token.DefaultKey
	}
	return &TokenStore{client: client, key: cfg.Prefix + key}, nil
}

func (s *TokenStore) Get(ctx context.Context) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get token: %w", err)
	}
	if strings.TrimSpace(v) == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *TokenStore) Set(ctx context.Context, tok string) error {
	if strings.TrimSpace(tok) == "" {
		return token.ErrEmptyToken
	}
	if err := s.client.Set(ctx, s.key, tok, 0).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}
