package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-parser/internal/auth"
	"github.com/octobees/lead-parser/internal/config"
	"github.com/octobees/lead-parser/internal/handler"
	"github.com/octobees/lead-parser/internal/router"
	"github.com/octobees/lead-parser/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled() {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret)
	} else {
		log.Printf("JWT_SECRET not set, /api routes are unauthenticated")
	}

	leadsService := service.NewLeadsService(service.NewLeadNormalizer(cfg.PhoneRegion))
	parseHandler := handler.NewParseHandler(leadsService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, jwtManager, router.Handlers{Parse: parseHandler})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s (max_body=%s rate_limit=%d/%s region=%s)",
			cfg.Port, cfg.MaxBodySize, cfg.RateLimitParse.Requests, cfg.RateLimitParse.Interval, cfg.PhoneRegion)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
