package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("AUTH_ROLE", "ingest")
	t.Setenv("PHONE_REGION", "gb")
	t.Setenv("MAX_BODY_SIZE", "512K")
	t.Setenv("RATE_LIMIT_PARSE", "10/min")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.JWTSecret != "super-secret" || cfg.AuthRole != "ingest" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if !cfg.AuthEnabled() {
		t.Fatalf("expected auth to be enabled")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
	if cfg.PhoneRegion != "GB" {
		t.Fatalf("expected upper-cased region, got %s", cfg.PhoneRegion)
	}
	if cfg.MaxBodySize != "512K" {
		t.Fatalf("unexpected body limit: %s", cfg.MaxBodySize)
	}
	if cfg.RateLimitParse.Requests != 10 || cfg.RateLimitParse.Interval != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimitParse)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "AUTH_ROLE", "PHONE_REGION", "MAX_BODY_SIZE", "RATE_LIMIT_PARSE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.PhoneRegion != "US" || cfg.MaxBodySize != "2M" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AuthEnabled() {
		t.Fatalf("expected auth to be disabled without a secret")
	}
	if cfg.RateLimitParse.Requests != 60 || cfg.RateLimitParse.Interval != time.Minute {
		t.Fatalf("unexpected default rate limit: %+v", cfg.RateLimitParse)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected default durations: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"RATE_LIMIT_PARSE": "xyz",
		"MAX_BODY_SIZE":    "lots",
		"PHONE_REGION":     "USA",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Requests != 5 || cfg.Interval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	cfg, err = parseRateLimit("off")
	if err != nil || cfg.Requests != 0 {
		t.Fatalf("expected disabled limiter, got %+v (%v)", cfg, err)
	}

	if _, err := parseRateLimit("bad-format"); err == nil {
		t.Fatalf("expected error for malformed value")
	}
	if _, err := parseRateLimit("0/min"); err == nil {
		t.Fatalf("expected error for zero requests")
	}
	if _, err := parseRateLimit("5/day"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	if val := getEnv("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback, got %s", val)
	}
	t.Setenv("FOO", " value ")
	if val := getEnv("FOO", "fallback"); val != "value" {
		t.Fatalf("expected trimmed env value, got %s", val)
	}
}

func TestParseDuration(t *testing.T) {
	if parseDuration("3h", time.Hour) != 3*time.Hour {
		t.Fatalf("expected 3h duration")
	}
	if parseDuration("invalid", time.Hour) != time.Hour {
		t.Fatalf("expected fallback duration")
	}
	if parseDuration("-5s", time.Hour) != time.Hour {
		t.Fatalf("expected fallback for negative duration")
	}
}
