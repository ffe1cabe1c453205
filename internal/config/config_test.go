package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PANEL_API_BASE_URL", "PANEL_HTTP_ADDR", "PANEL_HTTP_TIMEOUT", "PANEL_HTTP_TIMEOUT_SECONDS",
		"PANEL_TOKEN_DRIVER", "PANEL_TOKEN_KEY", "PANEL_REDIS_DB",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected default base url %s", cfg.APIBaseURL)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default addr %s", cfg.HTTPAddr)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %s", cfg.HTTPTimeout)
	}
	if cfg.Token.Driver != "file" || cfg.Token.Key != "token" {
		t.Fatalf("unexpected token defaults %+v", cfg.Token)
	}
	if cfg.Token.File == "" {
		t.Fatalf("expected a default token file path")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PANEL_API_BASE_URL", "https://care.example.com/")
	t.Setenv("PANEL_HTTP_ADDR", ":18080")
	t.Setenv("PANEL_HTTP_TIMEOUT", "")
	t.Setenv("PANEL_HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("PANEL_TOKEN_DRIVER", "REDIS")
	t.Setenv("PANEL_REDIS_ADDR", "redis:6379")
	t.Setenv("PANEL_REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.APIBaseURL != "https://care.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.HTTPAddr != ":18080" {
		t.Fatalf("expected addr override, got %s", cfg.HTTPAddr)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Token.Driver != "redis" || cfg.Token.RedisAddr != "redis:6379" || cfg.Token.RedisDB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Token)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected LOG_LEVEL override, got %s", cfg.LogLevel)
	}
}
