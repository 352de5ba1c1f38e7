package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/features/instructors/dto"
	instructorService "soundwave_backend/internals/features/instructors/service"
	helper "soundwave_backend/internals/helpers"
)

type InstructorController struct {
	Service  *instructorService.InstructorService
	validate *validator.Validate
}

func NewInstructorController(svc *instructorService.InstructorService) *InstructorController {
	return &InstructorController{Service: svc, validate: validator.New()}
}

// GET /instructors
func (ic *InstructorController) ListInstructors(c *fiber.Ctx) error {
	list, err := ic.Service.Showcase(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Instructors fetched successfully", list)
}

// POST /instructors
func (ic *InstructorController) RegisterInstructor(c *fiber.Ctx) error {
	var req dto.RegisterInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ic.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, created, err := ic.Service.Register(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !created {
		return helper.JsonOK(c, "instructor already exists", dto.RegisterInstructorResponse{Inserted: false, Instructor: m})
	}
	return helper.JsonCreated(c, "Instructor registered", dto.RegisterInstructorResponse{Inserted: true, Instructor: m})
}
