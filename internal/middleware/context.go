package middleware

import (
	"github.com/labstack/echo/v4"
)

// Context keys used to store request metadata.
const (
	ContextKeySubject   = "subject"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// reject ends the request with an error envelope matching the handler responses.
func reject(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"status": "error", "message": message})
}
