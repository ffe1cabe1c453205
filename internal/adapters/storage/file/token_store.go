package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"eldercare-panel/internal/ports/token"
)

// TokenStore guarda el token en un archivo (0600). Es el equivalente
// al localStorage del navegador: sobrevive reinicios del proceso.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

func NewTokenStore(path string) (*TokenStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("token file path required")
	}
	return &TokenStore{path: path}, nil
}

func (s *TokenStore) Path() string { return s.path }

func (s *TokenStore) Get(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read token file: %w", err)
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", false, nil
	}
	return tok, true, nil
}

// Set escribe a un temporal y renombra, para no dejar un archivo a medias.
func (s *TokenStore) Set(_ context.Context, tok string) error {
	if strings.TrimSpace(tok) == "" {
		return token.ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod token file: %w", err)
	}
	if _, err := tmp.WriteString(tok); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (s *TokenStore) Close() error { return nil }
