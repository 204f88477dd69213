package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ums-chatbot-be/internal/pkg/logger"
)

// RequestLoggerMiddleware tags every request with an id and logs
// method/path/status/duration after the handler chain completes.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.NewString()
		ctx.Locals("request_id", requestId)
		ctx.Set("X-Request-Id", requestId)

		start := time.Now()
		err := ctx.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"request_id": requestId,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"duration":   time.Since(start).String(),
		})

		return err
	}
}
