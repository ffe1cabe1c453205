package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eldercare-panel/internal/ports/token"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// StoredToken es la fila persistida; una por key.
type StoredToken struct {
	Name      string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (StoredToken) TableName() string { return "panel_tokens" }

type TokenStore struct {
	db     *gorm.DB
	key    string
	ownsDB bool
}

// NewTokenStore usa un *gorm.DB existente y migra la tabla.
func NewTokenStore(db *gorm.DB, key string) (*TokenStore, error) {
	if db == nil {
		return nil, errors.New("sqlite token store requires database handle")
	}
	if strings.TrimSpace(key) == "" {
		key = token.DefaultKey
	}
	if err := db.AutoMigrate(&StoredToken{}); err != nil {
		return nil, fmt.Errorf("migrate panel_tokens: %w", err)
	}
	return &TokenStore{db: db, key: key}, nil
}

// Open abre el archivo sqlite indicado por dsn.
func Open(dsn, key string) (*TokenStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite dsn required")
	}
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s, err := NewTokenStore(db, key)
	if err != nil {
		closeDB(db)
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

func (s *TokenStore) Get(ctx context.Context) (string, bool, error) {
	var row StoredToken
	err := s.db.WithContext(ctx).Where("name = ?", s.key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select token: %w", err)
	}
	if strings.TrimSpace(row.Value) == "" {
		return "", false, nil
	}
	return row.Value, true, nil
}

func (s *TokenStore) Set(ctx context.Context, tok string) error {
	if strings.TrimSpace(tok) == "" {
		return token.ErrEmptyToken
	}
	row := StoredToken{Name: s.key, Value: tok, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("name = ?", s.key).Delete(&StoredToken{}).Error; err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (s *TokenStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	closeDB(s.db)
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
