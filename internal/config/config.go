package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the settings of both binaries. Each reads only what it needs.
type Config struct {
	Port            string
	DatabaseURL     string
	Development     bool
	ShutdownTimeout time.Duration

	Endpoint    string
	HTTPTimeout time.Duration

	// OTLPEndpoint is where traces, metrics and logs are exported. The CLI
	// only traces when it is set.
	OTLPEndpoint string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", k, v)
	}
	return d, nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Development: getEnv("APP_ENV", "production") == "development",
		Endpoint:    getEnv("CGPA_ENDPOINT", "http://localhost:8080/calculate_cgpa"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.ShutdownTimeout, err = getDuration("CGPA_SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getDuration("CGPA_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address of the API server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
