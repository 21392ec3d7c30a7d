package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/bytes"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port            string
	JWTSecret       string
	AuthRole        string
	PhoneRegion     string
	MaxBodySize     string
	RateLimitParse  RateLimitConfig
	ShutdownTimeout time.Duration
}

// AuthEnabled reports whether bearer tokens are required on the API routes.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AuthRole:        strings.TrimSpace(os.Getenv("AUTH_ROLE")),
		PhoneRegion:     strings.ToUpper(getEnv("PHONE_REGION", "US")),
		MaxBodySize:     getEnv("MAX_BODY_SIZE", "2M"),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}

	if len(cfg.PhoneRegion) != 2 {
		return nil, fmt.Errorf("invalid PHONE_REGION value %q: expected a two-letter region code", cfg.PhoneRegion)
	}

	if size, err := bytes.Parse(cfg.MaxBodySize); err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid MAX_BODY_SIZE value %q", cfg.MaxBodySize)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_PARSE", "60/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PARSE value: %w", err)
	}
	cfg.RateLimitParse = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	if strings.EqualFold(strings.TrimSpace(value), "off") {
		return RateLimitConfig{}, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
