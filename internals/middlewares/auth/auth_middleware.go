// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	authService "soundwave_backend/internals/features/users/auth/service"
	helper "soundwave_backend/internals/helpers"
)

// TokenVerifier is satisfied by *authService.TokenService.
type TokenVerifier interface {
	Verify(raw string) (authService.Identity, error)
}

// AuthJWT rejects the request with 401 unless it carries a valid bearer
// token. The verified identity is stored in Locals for handlers and RequireRole.
func AuthJWT(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		identity, err := tokens.Verify(raw)
		if err != nil {
			log.Printf("[WARN] AuthJWT %s %s: %v", c.Method(), c.OriginalURL(), err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		c.Locals(helper.LocUserEmail, identity.Email)
		c.Locals(helper.LocUserRole, identity.Role)
		return c.Next()
	}
}
