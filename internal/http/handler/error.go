package handler

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"startconnect/internal/http/middleware"
	"startconnect/internal/repository"
	"startconnect/internal/service"
)

// errorPayload is the standardized error response body.
type errorPayload = middleware.ErrorPayload

// writeError writes a standardized JSON error response. message must never
// carry internal error details.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return middleware.WriteError(c, status, code, message)
}

type kindMapping struct {
	kind   error
	status int
	code   string
	msg    string
}

// kindTable maps error kinds to responses. Order matters: the first match wins.
var kindTable = []kindMapping{
	{service.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid input"},
	{service.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "not allowed"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "resource not found"},
	{sql.ErrNoRows, fiber.StatusNotFound, "NOT_FOUND", "resource not found"},
	{service.ErrConflict, fiber.StatusConflict, "CONFLICT", "conflict"},
	{repository.ErrDuplicate, fiber.StatusConflict, "CONFLICT", "resource already exists"},
	{repository.ErrReference, fiber.StatusBadRequest, "VALIDATION_ERROR", "referenced resource does not exist"},
	{context.DeadlineExceeded, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable"},
}

// respondError translates a service-layer error into an HTTP response.
// Domain errors keep their own code and message; anything unknown is logged
// and answered with a bare 500.
func respondError(c *fiber.Ctx, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		for _, m := range kindTable {
			if errors.Is(se.Kind, m.kind) {
				return writeError(c, m.status, se.Code, se.Message)
			}
		}
	}
	for _, m := range kindTable {
		if errors.Is(err, m.kind) {
			return writeError(c, m.status, m.code, m.msg)
		}
	}

	logrus.WithError(err).
		WithField("request_id", middleware.RequestIDFrom(c)).
		WithField("path", c.Path()).
		Error("unhandled error")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return respondError(c, err)
		}
	}
}
