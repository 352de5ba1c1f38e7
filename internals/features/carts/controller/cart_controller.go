package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundwave_backend/internals/features/carts/dto"
	cartService "soundwave_backend/internals/features/carts/service"
	helper "soundwave_backend/internals/helpers"
)

type CartController struct {
	Service  *cartService.CartService
	validate *validator.Validate
}

func NewCartController(svc *cartService.CartService) *CartController {
	return &CartController{Service: svc, validate: validator.New()}
}

// GET /carts?email=
func (cc *CartController) ListCart(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	entries, err := cc.Service.ListForUser(c.UserContext(), caller, c.Query("email"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Cart fetched successfully", dto.FromModelList(entries))
}

// POST /carts
func (cc *CartController) AddToCart(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.AddCartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := cc.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Email != "" && !strings.EqualFold(req.Email, caller) {
		return helper.JsonError(c, fiber.StatusForbidden, "forbidden access")
	}

	entry, err := cc.Service.Add(c.UserContext(), req.ToModel(caller))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Class added to cart", dto.FromModel(entry))
}

// DELETE /carts/:id
func (cc *CartController) RemoveFromCart(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid UUID")
	}
	if err := cc.Service.Remove(c.UserContext(), caller, id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Cart entry removed", fiber.Map{"id": id})
}
