package middleware

import (
	"time"

	"scheme-navigator/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const loggerLocalKey = "logger"

// RequestContext derives a logger tagged with the request id and makes it
// available both to handlers and, through the user context, to services.
// It must run after the requestid middleware.
func RequestContext(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLogger := base.With(
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		)

		c.Locals(loggerLocalKey, reqLogger)
		c.SetUserContext(logger.WithContext(c.UserContext(), reqLogger))

		err := c.Next()

		reqLogger.Debug("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}

// RequestLogger returns the logger stored by RequestContext, or fallback.
func RequestLogger(c *fiber.Ctx, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Locals(loggerLocalKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return fallback
}
