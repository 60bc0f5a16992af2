package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STOREFRONT_APP_ENV", "dev")
	t.Setenv("STOREFRONT_APP_PORT", "8080")
	t.Setenv("STOREFRONT_UPSTREAM_BASE_URL", "http://upstream.test/api")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Session.CookieName != "jwt" {
		t.Fatalf("unexpected cookie name %q", cfg.Session.CookieName)
	}
	if cfg.Session.RefreshThreshold != 2*time.Minute {
		t.Fatalf("unexpected refresh threshold %s", cfg.Session.RefreshThreshold)
	}
	if cfg.Session.HeartbeatInterval != 10*time.Second {
		t.Fatalf("unexpected heartbeat interval %s", cfg.Session.HeartbeatInterval)
	}
	if cfg.Upstream.Timeout != 10*time.Second {
		t.Fatalf("unexpected upstream timeout %s", cfg.Upstream.Timeout)
	}
	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatal("env helpers disagree with STOREFRONT_APP_ENV=dev")
	}
}

func TestLoadRejectsNonPositiveThreshold(t *testing.T) {
	setRequired(t)
	t.Setenv("STOREFRONT_SESSION_REFRESH_THRESHOLD", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero refresh threshold")
	}
}

func TestLoadRequiresUpstreamBaseURL(t *testing.T) {
	t.Setenv("STOREFRONT_APP_ENV", "dev")
	t.Setenv("STOREFRONT_APP_PORT", "8080")
	t.Setenv("STOREFRONT_UPSTREAM_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing upstream base url")
	}
}
