package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/http/middleware"
	"dashboard/internal/model"
	"dashboard/internal/proxy"
)

// writeError writes the standard {"error": ..., "request_id": ...} body.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(model.ErrorResponse{
		Error:     message,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// respondError translates a service error into its HTTP response.
// A *proxy.Error already carries the status and message; anything else is an internal error.
func respondError(c *fiber.Ctx, err error) error {
	if pe, ok := proxy.AsError(err); ok {
		return writeError(c, pe.Status, pe.Message)
	}
	return writeError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
