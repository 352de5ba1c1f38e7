package controller

import (
	"log"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundwave_backend/internals/constants"
	userdto "soundwave_backend/internals/features/users/users/dto"
	userService "soundwave_backend/internals/features/users/users/service"
	helper "soundwave_backend/internals/helpers"
)

type UserController struct {
	Service  *userService.UserService
	validate *validator.Validate
}

func NewUserController(svc *userService.UserService) *UserController {
	return &UserController{Service: svc, validate: validator.New()}
}

// GET /users (admin)
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.Service.List(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Users fetched successfully", userdto.FromModelList(users))
}

// POST /users
func (uc *UserController) RegisterUser(c *fiber.Ctx) error {
	var req userdto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := uc.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, created, err := uc.Service.Register(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := userdto.FromModel(user)
	if !created {
		return helper.JsonOK(c, "user already exists", userdto.RegisterUserResponse{Inserted: false, User: &resp})
	}
	log.Printf("[INFO] user registered: %s", user.Email)
	return helper.JsonCreated(c, "User created successfully", userdto.RegisterUserResponse{Inserted: true, User: &resp})
}

// PUT /users/instructors/:id (admin)
func (uc *UserController) MakeInstructor(c *fiber.Ctx) error {
	return uc.setRole(c, constants.RoleInstructor)
}

// PATCH /users/admin/:id (admin)
func (uc *UserController) MakeAdmin(c *fiber.Ctx) error {
	return uc.setRole(c, constants.RoleAdmin)
}

func (uc *UserController) setRole(c *fiber.Ctx, role string) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}
	user, err := uc.Service.SetRole(c.UserContext(), id, role)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("[INFO] role of %s set to %s", user.Email, role)
	return helper.JsonUpdated(c, "Role updated", userdto.FromModel(user))
}

// GET /users/admin/:email
func (uc *UserController) CheckAdmin(c *fiber.Ctx) error {
	return uc.checkRole(c, constants.RoleAdmin)
}

// GET /users/instructor/:email
func (uc *UserController) CheckInstructor(c *fiber.Ctx) error {
	return uc.checkRole(c, constants.RoleInstructor)
}

func (uc *UserController) checkRole(c *fiber.Ctx, role string) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "email is not valid")
	}
	ok, err := uc.Service.HasRole(c.UserContext(), caller, email, role)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{role: ok})
}
