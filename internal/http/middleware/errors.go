package middleware

import "github.com/gofiber/fiber/v2"

// ErrorPayload is the body of every error response.
type ErrorPayload struct {
	RequestID string        `json:"request_id"`
	Error     ErrorEnvelope `json:"error"`
}

type ErrorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError writes an ErrorPayload with the given status. message must be
// safe to show to clients.
func WriteError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorPayload{
		RequestID: RequestIDFrom(c),
		Error:     ErrorEnvelope{Code: code, Message: message},
	})
}
