package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs one line per request through the charm logger.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"bytes", res.Size,
				"took", time.Since(start).Round(time.Microsecond),
			}
			switch {
			case res.Status >= 500:
				log.Error("ipc request", fields...)
			case res.Status >= 400:
				log.Warn("ipc request", fields...)
			default:
				log.Info("ipc request", fields...)
			}
			return nil
		}
	}
}
