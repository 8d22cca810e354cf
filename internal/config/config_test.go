package config

import (
	"net/http"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "PORT", "JWT_SECRET", "JWT_EXPIRES_IN", "FRONTEND_URL", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Policy.Production {
		t.Error("expected development policy")
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Errorf("ttl = %s, want 168h", cfg.Auth.TokenTTL)
	}
	if !cfg.Auth.EphemeralSecret || cfg.Auth.JWTSecret == "" {
		t.Error("development must generate a random per-process secret")
	}
	if cfg.Policy.Cookie.SameSite != http.SameSiteLaxMode || cfg.Policy.Cookie.Secure {
		t.Errorf("unexpected dev cookie policy: %+v", cfg.Policy.Cookie)
	}
	if cfg.Policy.Cookie.Domain != "localhost" {
		t.Errorf("dev cookie domain = %q", cfg.Policy.Cookie.Domain)
	}
	if len(cfg.Policy.AllowedOrigins) != 2 {
		t.Errorf("dev origins = %v", cfg.Policy.AllowedOrigins)
	}
	if cfg.Environment() != "development" {
		t.Errorf("environment = %q", cfg.Environment())
	}
}

func TestLoadProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Policy.Production {
		t.Error("expected production policy")
	}
	if cfg.Auth.EphemeralSecret {
		t.Error("explicit secret must not be flagged ephemeral")
	}
	if got := cfg.Policy.AllowedOrigins; len(got) != 1 || got[0] != "https://app.example.com" {
		t.Errorf("origins = %v", got)
	}
	if cfg.Policy.Cookie.SameSite != http.SameSiteNoneMode || !cfg.Policy.Cookie.Secure {
		t.Errorf("unexpected prod cookie policy: %+v", cfg.Policy.Cookie)
	}
	if cfg.Policy.Cookie.Domain != "" {
		t.Errorf("prod cookie must not pin a domain, got %q", cfg.Policy.Cookie.Domain)
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET in production")
	}
}

func TestLoadProductionRequiresFrontendURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing FRONTEND_URL in production")
	}
}

func TestLoadTokenTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRES_IN", "24h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("ttl = %s, want 24h", cfg.Auth.TokenTTL)
	}

	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed JWT_EXPIRES_IN")
	}

	t.Setenv("JWT_EXPIRES_IN", "-1h")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative JWT_EXPIRES_IN")
	}
}
