package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"startconnect/internal/logger"
)

// Logger writes one structured line per request with request_id, method,
// path, status and latency (milliseconds). 5xx log at error, 4xx at warn.
func Logger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		entry := log.WithFields(logrus.Fields{
			"request_id": RequestIDFrom(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})
		if uid := uidFrom(c); uid != "" {
			entry = entry.WithField("uid", uid)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
		return err
	}
}

// LoggerWithWriter is Logger over a fresh JSON logger writing to w.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.New(w, "info", loc))
}
