package route

import (
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/constants"
	userController "soundwave_backend/internals/features/users/users/controller"
	rateLimiter "soundwave_backend/internals/middlewares"
	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, ctrl *userController.UserController, gate authMiddleware.Gate) {
	users := r.Group("/users")

	users.Post("/", rateLimiter.RegisterRateLimiter(), ctrl.RegisterUser)

	// self-check, jawaban false bila email bukan milik pemanggil
	users.Get("/admin/:email", gate.Authenticated(), ctrl.CheckAdmin)
	users.Get("/instructor/:email", gate.Authenticated(), ctrl.CheckInstructor)

	// admin
	users.Get("/", append(gate.Role(constants.RoleAdmin, "user listing"), ctrl.ListUsers)...)
	users.Put("/instructors/:id", append(gate.Role(constants.RoleAdmin, "role management"), ctrl.MakeInstructor)...)
	users.Patch("/admin/:id", append(gate.Role(constants.RoleAdmin, "role management"), ctrl.MakeAdmin)...)
}
