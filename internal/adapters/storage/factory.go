// Package storage elige el backend del token de sesión según configuración.
package storage

import (
	"context"
	"fmt"

	"eldercare-panel/internal/adapters/storage/file"
	mem "eldercare-panel/internal/adapters/storage/memory"
	pg "eldercare-panel/internal/adapters/storage/postgres"
	rds "eldercare-panel/internal/adapters/storage/redis"
	lite "eldercare-panel/internal/adapters/storage/sqlite"
	"eldercare-panel/internal/config"
	"eldercare-panel/internal/ports/token"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewTokenStore construye el store indicado por cfg.Driver (default: file).
func NewTokenStore(ctx context.Context, cfg config.TokenConfig) (token.Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFile
	}

	var (
		s   token.Store
		err error
	)
	switch driver {
	case DriverMemory:
		return mem.NewTokenStore(), nil
	case DriverFile:
		s, err = asStore(file.NewTokenStore(cfg.File))
	case DriverRedis:
		s, err = asStore(rds.NewTokenStore(ctx, rds.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
			Key:      cfg.Key,
		}))
	case DriverPostgres:
		s, err = asStore(pg.OpenTokenStore(ctx, cfg.PostgresDSN, cfg.Key))
	case DriverSQLite:
		s, err = asStore(lite.Open(cfg.SQLiteDSN, cfg.Key))
	default:
		return nil, fmt.Errorf("unsupported token store driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s token store: %w", driver, err)
	}
	return s, nil
}

// asStore evita devolver un puntero nil envuelto en la interfaz.
func asStore[S token.Store](s S, err error) (token.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
