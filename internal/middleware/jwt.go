package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/octobees/lead-parser/internal/auth"
)

// JWT validates bearer tokens and stores the caller identity in the request context.
func JWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, http.StatusUnauthorized, "missing authorization header")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return reject(c, http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := manager.ParseToken(strings.TrimSpace(token))
			if err != nil {
				log.Printf("request_id=%s rejected token: %v", RequestIDFromContext(c), err)
				return reject(c, http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyUserRole, claims.Role)

			return next(c)
		}
	}
}
