package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-parser/internal/auth"
	"github.com/octobees/lead-parser/internal/config"
	"github.com/octobees/lead-parser/internal/handler"
	"github.com/octobees/lead-parser/internal/service"
)

func newTestServer(t *testing.T, cfg *config.Config, manager *auth.JWTManager) *echo.Echo {
	t.Helper()
	e := echo.New()
	Register(e, cfg, manager, Handlers{
		Parse: handler.NewParseHandler(service.NewLeadsService(service.NewLeadNormalizer(cfg.PhoneRegion))),
	})
	return e
}

func baseConfig() *config.Config {
	return &config.Config{
		PhoneRegion:    "US",
		MaxBodySize:    "2M",
		RateLimitParse: config.RateLimitConfig{Requests: 100, Interval: time.Minute},
	}
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "service", "extract", "testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}

func TestRegister_Healthz(t *testing.T) {
	e := newTestServer(t, baseConfig(), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRegister_ParseOpen(t *testing.T) {
	e := newTestServer(t, baseConfig(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(fixture(t, "bizbuysell.html")))
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"phone":"+14155551234"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegister_BodyLimit(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxBodySize = "1K"
	e := newTestServer(t, cfg, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(strings.Repeat("bizbuysell ", 200)))
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"error"`) {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestRegister_RateLimit(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimitParse = config.RateLimitConfig{Requests: 1, Interval: time.Hour}
	e := newTestServer(t, cfg, nil)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(fixture(t, "murphy.html"))))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes: %v", codes)
	}

	// health checks are never limited
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected health check to pass, got %d", rec.Code)
	}
}

func TestRegister_Auth(t *testing.T) {
	cfg := baseConfig()
	cfg.JWTSecret = "secret"
	cfg.AuthRole = "ingest"
	manager := auth.NewJWTManager(cfg.JWTSecret)
	e := newTestServer(t, cfg, manager)

	ingest, err := manager.GenerateToken("forwarder", "ingest", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	viewer, err := manager.GenerateToken("dashboard", "viewer", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := map[string]struct {
		token      string
		expectCode int
	}{
		"missing token": {expectCode: http.StatusUnauthorized},
		"wrong role":    {token: viewer, expectCode: http.StatusForbidden},
		"authorized":    {token: ingest, expectCode: http.StatusOK},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(fixture(t, "businessbroker.txt")))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, rec.Code, rec.Body.String())
			}
		})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected health check to stay open, got %d", rec.Code)
	}
}
