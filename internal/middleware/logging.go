package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value line per HTTP request once the response is written.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Printf("request_id=%s method=%s path=%s status=%d bytes_in=%d bytes_out=%d remote_ip=%s latency=%s",
				RequestIDFromContext(c), req.Method, req.URL.Path, res.Status, req.ContentLength, res.Size, c.RealIP(), latency)

			return err
		}
	}
}
