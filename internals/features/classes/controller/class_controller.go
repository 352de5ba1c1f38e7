package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundwave_backend/internals/features/classes/dto"
	classModel "soundwave_backend/internals/features/classes/model"
	classService "soundwave_backend/internals/features/classes/service"
	helper "soundwave_backend/internals/helpers"
)

type ClassController struct {
	Service  *classService.CatalogService
	validate *validator.Validate
}

func NewClassController(svc *classService.CatalogService) *ClassController {
	return &ClassController{Service: svc, validate: validator.New()}
}

// GET /classes
func (cc *ClassController) ListClasses(c *fiber.Ctx) error {
	classes, err := cc.Service.List(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Classes fetched successfully", dto.FromModelList(classes))
}

// GET /classes/approved
func (cc *ClassController) ListApprovedClasses(c *fiber.Ctx) error {
	classes, err := cc.Service.ListApproved(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Classes fetched successfully", dto.FromModelList(classes))
}

// GET /classes/mine (instructor)
func (cc *ClassController) ListMyClasses(c *fiber.Ctx) error {
	email, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classes, err := cc.Service.ListByInstructor(c.UserContext(), email)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Classes fetched successfully", dto.FromModelList(classes))
}

// POST /classes (instructor)
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	email, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := cc.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, err := cc.Service.Create(c.UserContext(), email, req.ToModel())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("[INFO] class %s created by %s", class.ID, email)
	return helper.JsonCreated(c, "Class created", dto.FromModel(class))
}

// PUT /classes/approved/:id (admin)
func (cc *ClassController) ApproveClass(c *fiber.Ctx) error {
	return cc.review(c, classModel.ClassStatusApproved)
}

// PUT /classes/denied/:id (admin)
func (cc *ClassController) DenyClass(c *fiber.Ctx) error {
	return cc.review(c, classModel.ClassStatusDenied)
}

func (cc *ClassController) review(c *fiber.Ctx, status string) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}

	var req dto.ReviewClassRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := cc.validate.Struct(&req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	class, err := cc.Service.SetStatus(c.UserContext(), id, status, req.Feedback)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Class "+status, dto.FromModel(class))
}
