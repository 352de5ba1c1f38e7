package route

import (
	"github.com/gofiber/fiber/v2"

	instructorController "soundwave_backend/internals/features/instructors/controller"
)

// InstructorRoutes are public.
func InstructorRoutes(r fiber.Router, ctrl *instructorController.InstructorController) {
	instructors := r.Group("/instructors")
	instructors.Get("/", ctrl.ListInstructors)
	instructors.Post("/", ctrl.RegisterInstructor)
}
