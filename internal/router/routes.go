package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/lead-parser/internal/auth"
	"github.com/octobees/lead-parser/internal/config"
	"github.com/octobees/lead-parser/internal/handler"
	middlewarepkg "github.com/octobees/lead-parser/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Parse *handler.ParseHandler
}

// Register wires the shared middleware and all HTTP routes for the API. A nil jwtManager
// leaves the API routes open.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")
	if jwtManager != nil {
		api.Use(middlewarepkg.JWT(jwtManager))
		if cfg.AuthRole != "" {
			api.Use(middlewarepkg.RequireRole(cfg.AuthRole))
		}
	}

	api.POST("/parse", handlers.Parse.Parse,
		middlewarepkg.RateLimiter(cfg.RateLimitParse),
		echoMiddleware.BodyLimit(cfg.MaxBodySize),
	)
}
