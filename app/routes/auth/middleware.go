package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"school-records/app/apperr"
)

const identityKey = "identity"

// AuthMiddleware requires a Bearer token on the request and stores the
// verified identity in the request context. A missing credential is
// Unauthenticated, which is distinct from a Forbidden policy denial.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return apperr.ErrUnauthenticated
	}

	ident, err := VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return err
	}

	c.Locals(identityKey, ident)
	return c.Next()
}

// IdentityFromCtx returns the identity stored by AuthMiddleware. Routes
// behind the middleware can rely on it being present.
func IdentityFromCtx(c *fiber.Ctx) *Identity {
	ident, _ := c.Locals(identityKey).(*Identity)
	return ident
}
