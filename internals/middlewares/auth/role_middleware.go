package auth

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/constants"
	helper "soundwave_backend/internals/helpers"
)

// RoleStore answers the current persisted role for an email.
type RoleStore interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// RequireRole must run after AuthJWT. The role is read from the store on
// every request; the role embedded in the token is ignored so a downgrade
// applies before the token expires.
func RequireRole(roles RoleStore, role string, feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := helper.GetEmailFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		current, err := roles.RoleOf(c.UserContext(), email)
		if err != nil {
			log.Printf("[ERROR] RequireRole lookup %s: %v", email, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check role")
		}

		if current != role {
			log.Printf("[INFO] RequireRole: %s has role %q (token says %q), %q required for %s",
				email, current, helper.GetRoleFromToken(c), role, feature)
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleError(role, feature))
		}
		c.Locals(helper.LocUserRole, current)
		return c.Next()
	}
}
