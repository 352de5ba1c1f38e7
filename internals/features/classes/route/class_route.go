package route

import (
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/constants"
	classController "soundwave_backend/internals/features/classes/controller"
	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

func ClassRoutes(r fiber.Router, ctrl *classController.ClassController, gate authMiddleware.Gate) {
	classes := r.Group("/classes")

	// public
	classes.Get("/", ctrl.ListClasses)
	classes.Get("/approved", ctrl.ListApprovedClasses)

	// instructor
	classes.Get("/mine", append(gate.Role(constants.RoleInstructor, "my classes"), ctrl.ListMyClasses)...)
	classes.Post("/", append(gate.Role(constants.RoleInstructor, "class creation"), ctrl.CreateClass)...)

	// admin review
	classes.Put("/approved/:id", append(gate.Role(constants.RoleAdmin, "class review"), ctrl.ApproveClass)...)
	classes.Put("/denied/:id", append(gate.Role(constants.RoleAdmin, "class review"), ctrl.DenyClass)...)
}
