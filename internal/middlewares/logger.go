package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestIDLocalKey = "requestid"

// RequestLogger logs one line per request once the handler chain has finished.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		if err != nil {
			if herr := ctx.App().Config().ErrorHandler(ctx, err); herr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		requestID, _ := ctx.Locals(requestIDLocalKey).(string)
		logger.InfoContext(ctx.UserContext(), "request",
			"requestID", requestID,
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"latency", time.Since(start),
			"ip", ctx.IP(),
		)
		return nil
	}
}
