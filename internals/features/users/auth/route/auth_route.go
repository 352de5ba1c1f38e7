package route

import (
	"github.com/gofiber/fiber/v2"

	authController "soundwave_backend/internals/features/users/auth/controller"
	rateLimiter "soundwave_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, ctrl *authController.AuthController) {
	r.Post("/jwt", rateLimiter.LoginRateLimiter(), ctrl.IssueToken)
}
