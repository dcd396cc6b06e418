package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
)

// IdentityLocalKey is the Fiber locals key holding the caller's *model.Identity.
const IdentityLocalKey = "identity"

// TokenVerifier checks a bearer token with the identity provider.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*model.Identity, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the
// verified identity in locals.
func Authenticate(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return WriteError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "missing or malformed bearer token")
		}
		id, err := v.VerifyToken(c.UserContext(), token)
		if err != nil {
			return WriteError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := IdentityFrom(c)
		if id == nil || !id.Admin {
			return WriteError(c, fiber.StatusForbidden, "ADMIN_REQUIRED", "admin privileges required")
		}
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by Authenticate, or nil.
func IdentityFrom(c *fiber.Ctx) *model.Identity {
	id, _ := c.Locals(IdentityLocalKey).(*model.Identity)
	return id
}

func uidFrom(c *fiber.Ctx) string {
	if id := IdentityFrom(c); id != nil {
		return id.UID
	}
	return ""
}
