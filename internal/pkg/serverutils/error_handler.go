package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ums-chatbot-be/internal/pkg/apperr"
	"ums-chatbot-be/internal/pkg/logger"
)

// User-facing messages. Always generic; diagnostic detail stays in the logs.
const (
	MsgInvalidQuestion    = "❓ Please provide a valid question so I can help you."
	MsgServerMisconfig    = "Sorry, something went wrong on our side. Please try again later."
	MsgServiceNotReady    = "The answer service is still starting up. Please try again in a moment."
	MsgQueryTimeout       = "⏳ The request took too long. Please try again with a simpler question."
	MsgServiceUnavailable = "Sorry, the answer service is currently unavailable. Please try again later."
	MsgDownstreamFailure  = "Sorry, I could not process your question right now."
	MsgInternalFailure    = "Sorry, something went wrong. Please try again."
)

// ErrorBody is the error envelope for query endpoints. Answer carries the
// apology-style message so chat clients can render it like a normal reply.
type ErrorBody struct {
	Error  string `json:"error"`
	Answer string `json:"answer"`
	Detail string `json:"detail,omitempty"`
}

// ErrorHandlerMiddleware converts tagged errors bubbling out of handlers
// into HTTP responses. It is the only place status mapping happens.
func ErrorHandlerMiddleware(log logger.ILogger, environment string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			appErr = apperr.Wrap(apperr.KindInternal, "unhandled error", err)
		}

		log.Error("http", "request failed", map[string]interface{}{
			"kind":   appErr.Kind.String(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  appErr.Error(),
		})

		status, body := mapError(appErr, environment)
		return ctx.Status(status).JSON(body)
	}
}

func mapError(appErr *apperr.Error, environment string) (int, ErrorBody) {
	switch appErr.Kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest, ErrorBody{
			Error:  "validation_error",
			Answer: MsgInvalidQuestion,
		}
	case apperr.KindConfiguration:
		return fiber.StatusInternalServerError, ErrorBody{
			Error:  "configuration_error",
			Answer: MsgServerMisconfig,
		}
	case apperr.KindNotReady:
		return fiber.StatusServiceUnavailable, ErrorBody{
			Error:  "not_ready",
			Answer: MsgServiceNotReady,
		}
	case apperr.KindTimeout:
		return fiber.StatusGatewayTimeout, ErrorBody{
			Error:  "timeout",
			Answer: MsgQueryTimeout,
		}
	case apperr.KindUnreachable:
		return fiber.StatusServiceUnavailable, ErrorBody{
			Error:  "service_unavailable",
			Answer: MsgServiceUnavailable,
		}
	case apperr.KindDownstream:
		body := ErrorBody{
			Error:  "rag_error",
			Answer: MsgDownstreamFailure,
		}
		if environment != "production" {
			body.Detail = string(appErr.Body)
		}
		status := appErr.StatusCode
		if status < 400 {
			status = fiber.StatusBadGateway
		}
		return status, body
	default:
		return fiber.StatusInternalServerError, ErrorBody{
			Error:  "internal_error",
			Answer: MsgInternalFailure,
		}
	}
}
