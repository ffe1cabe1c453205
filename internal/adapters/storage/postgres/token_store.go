package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eldercare-panel/internal/ports/token"
)

const schema = `
	CREATE TABLE IF NOT EXISTS panel_tokens (
		name       TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// TokenStore guarda el token en la tabla panel_tokens, una fila por key.
type TokenStore struct {
	db     *sql.DB
	key    string
	ownsDB bool
	now    func() time.Time
}

// NewTokenStore usa un *sql.DB existente y crea la tabla si falta.
func NewTokenStore(ctx context.Context, db *sql.DB, key string) (*TokenStore, error) {
	if db == nil {
		return nil, errors.New("postgres token store requires database handle")
	}
	if strings.TrimSpace(key) == "" {
		key = token.DefaultKey
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure panel_tokens: %w", err)
	}
	return &TokenStore{db: db, key: key, now: time.Now}, nil
}

// OpenTokenStore abre la conexión desde un DSN; Close la cierra.
func OpenTokenStore(ctx context.Context, dsn, key string) (*TokenStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn required")
	}
	db, err := Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	s, err := NewTokenStore(ctx, db, key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

func (s *TokenStore) Get(ctx context.Context) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM panel_tokens WHERE name = $1`, s.key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select token: %w", err)
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO panel_tokens (name, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, s.key, tok, s.now().UTC())
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM panel_tokens WHERE name = $1`, s.key); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (s *TokenStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
