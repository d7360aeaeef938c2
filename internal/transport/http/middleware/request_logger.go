// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its status, duration and request id.
// Server errors are logged at error level and client errors at warn level.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Let the app error handler set the final status before logging.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		fields := []any{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id", reqID,
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("http", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("http", fields...)
		default:
			log.Infow("http", fields...)
		}
		return nil
	}
}
