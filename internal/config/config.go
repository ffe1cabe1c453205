package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPAddr    string
	HTTPTimeout time.Duration

	Token TokenConfig

	LogLevel  string
	LogFormat string
	AppName   string
}

// TokenConfig elige dónde se persiste el token de sesión.
type TokenConfig struct {
	Driver string // memory|file|redis|postgres|sqlite
	Key    string

	File string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	PostgresDSN string
	SQLiteDSN   string
}

// Load lee .env (si existe) y después el entorno.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:  strings.TrimRight(getenv("PANEL_API_BASE_URL", "http://localhost:8000"), "/"),
		HTTPAddr:    getenv("PANEL_HTTP_ADDR", ":8080"),
		HTTPTimeout: getenvDuration("PANEL_HTTP_TIMEOUT", 10*time.Second),
		Token: TokenConfig{
			Driver:        strings.ToLower(getenv("PANEL_TOKEN_DRIVER", "file")),
			Key:           getenv("PANEL_TOKEN_KEY", "token"),
			File:          getenv("PANEL_TOKEN_FILE", defaultTokenFile()),
			RedisAddr:     getenv("PANEL_REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: getenv("PANEL_REDIS_PASSWORD", ""),
			RedisDB:       getenvInt("PANEL_REDIS_DB", 0),
			RedisPrefix:   getenv("PANEL_REDIS_PREFIX", "eldercare-panel:"),
			PostgresDSN:   getenv("PANEL_DB_DSN", ""),
			SQLiteDSN:     getenv("PANEL_SQLITE_DSN", "eldercare-panel.db"),
		},
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
		AppName:   getenv("APP_NAME", "eldercare-panel"),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "eldercare-panel", "token")
	}
	return filepath.Join(home, ".eldercare-panel", "token")
}

func getenv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
