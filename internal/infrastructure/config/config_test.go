package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.SessionStore != "file" {
		t.Errorf("unexpected session store %q", cfg.SessionStore)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected redis addr %q", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://erp.example.com/api/v1")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_SESSION_TTL", "12h")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://erp.example.com/api/v1" {
		t.Errorf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.SessionStore != "redis" || cfg.Redis.TTL != 12*time.Hour {
		t.Errorf("redis settings not applied: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "mongodb")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for unknown session store")
	}
}
