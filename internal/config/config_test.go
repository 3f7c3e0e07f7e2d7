package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "APP_ENV", "CGPA_ENDPOINT", "CGPA_SHUTDOWN_TIMEOUT", "CGPA_HTTP_TIMEOUT", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr %q, got %q", ":8080", cfg.Addr())
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected no database url, got %q", cfg.DatabaseURL)
	}
	if cfg.Development {
		t.Fatal("expected production mode by default")
	}
	if cfg.Endpoint != "http://localhost:8080/calculate_cgpa" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.ShutdownTimeout != 5*time.Second || cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %s / %s", cfg.ShutdownTimeout, cfg.HTTPTimeout)
	}
	if cfg.OTLPEndpoint != "" {
		t.Fatalf("expected no OTLP endpoint, got %q", cfg.OTLPEndpoint)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CGPA_HTTP_TIMEOUT", "3s")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":9000" || !cfg.Development || cfg.HTTPTimeout != 3*time.Second || cfg.OTLPEndpoint != "http://collector:4318" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	tests := []string{"soon", "-1s", "0s"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("CGPA_SHUTDOWN_TIMEOUT", v)
			if _, err := Load(); err == nil {
				t.Fatalf("expected an error for %q", v)
			}
		})
	}
}
